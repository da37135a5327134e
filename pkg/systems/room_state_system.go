package systems

import (
	"log"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/ecs"
)

// RoomOutcome 房间状态检查的结果
type RoomOutcome int

const (
	// OutcomeNone 房间继续进行
	OutcomeNone RoomOutcome = iota
	// OutcomeDoorPassed 玩家穿过了打开的门
	OutcomeDoorPassed
	// OutcomeBossDefeated Boss 刚刚被击败（只报告一次）
	OutcomeBossDefeated
	// OutcomeGameOver 玩家死亡
	OutcomeGameOver
)

func (o RoomOutcome) String() string {
	switch o {
	case OutcomeDoorPassed:
		return "door_passed"
	case OutcomeBossDefeated:
		return "boss_defeated"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// RoomStateSystem 检查房间的全局状态
//
// 没有存活的敌人时打开门，玩家接触打开的门即离开房间，
// Boss 死亡和玩家死亡各只报告一次。
type RoomStateSystem struct {
	em       *ecs.EntityManager
	cw       *CollisionWorld
	audio    AudioPlayer
	resolver *CombatResolver

	door         ecs.EntityID
	boss         ecs.EntityID
	bossReported bool
	finished     bool
}

// NewRoomStateSystem 创建房间状态系统
// boss 为 0 表示普通房间
func NewRoomStateSystem(em *ecs.EntityManager, cw *CollisionWorld, audio AudioPlayer, resolver *CombatResolver, door, boss ecs.EntityID) *RoomStateSystem {
	if audio == nil {
		audio = NopAudio{}
	}
	return &RoomStateSystem{em: em, cw: cw, audio: audio, resolver: resolver, door: door, boss: boss}
}

// CountLivingEnemies 房间内存活的敌人和 Boss 数量
func CountLivingEnemies(em *ecs.EntityManager) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.HealthComponent](em) {
		if !ecs.HasComponent[*components.EnemyComponent](em, id) && !ecs.HasComponent[*components.BossComponent](em, id) {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if !health.Dead {
			count++
		}
	}
	return count
}

// DoorOpen 门是否已经打开
func (rs *RoomStateSystem) DoorOpen() bool {
	door, ok := ecs.GetComponent[*components.DoorComponent](rs.em, rs.door)
	return ok && door.Open
}

// Update 检查房间状态，房间结束后不再报告任何结果
func (rs *RoomStateSystem) Update() RoomOutcome {
	if rs.finished {
		return OutcomeNone
	}

	player, hasPlayer := rs.resolver.Player()
	if hasPlayer {
		if health, ok := ecs.GetComponent[*components.HealthComponent](rs.em, player); ok && health.Dead {
			rs.finished = true
			log.Printf("[RoomStateSystem] 游戏结束")
			return OutcomeGameOver
		}
	}

	if CountLivingEnemies(rs.em) == 0 && !rs.DoorOpen() {
		rs.openDoor()
	}

	if rs.boss != 0 && !rs.bossReported && rs.bossDead() {
		rs.bossReported = true
		return OutcomeBossDefeated
	}

	if hasPlayer && rs.DoorOpen() && rs.cw.OverlapsEntity(player, rs.door) {
		rs.finished = true
		log.Printf("[RoomStateSystem] 玩家穿过出口门")
		return OutcomeDoorPassed
	}
	return OutcomeNone
}

func (rs *RoomStateSystem) bossDead() bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](rs.em, rs.boss)
	return !ok || health.Dead
}

func (rs *RoomStateSystem) openDoor() {
	door, ok := ecs.GetComponent[*components.DoorComponent](rs.em, rs.door)
	if !ok {
		return
	}
	door.Open = true
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](rs.em, rs.door); ok {
		sprite.Key = "door_open"
	}
	rs.audio.Play("door", false)
	log.Printf("[RoomStateSystem] 房间已清空，出口门打开")
}
