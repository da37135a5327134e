package systems

import (
	"log"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
)

// shootSpriteDuration 射击后保持射击姿势的时间
const shootSpriteDuration = 200 * time.Millisecond

// InputSystem 按键采样器
//
// 按键事件只修改按住的键集合，移动和射击在每次采样时统一处理。
// 同时按住多个键时按固定优先级只处理一个，不会斜向移动或多向射击。
type InputSystem struct {
	em    *ecs.EntityManager
	clock *utils.SimClock
	walls *WallSystem

	held         map[types.Key]bool
	lastShootDir types.Direction
}

// NewInputSystem 创建按键采样器
func NewInputSystem(em *ecs.EntityManager, clock *utils.SimClock, walls *WallSystem) *InputSystem {
	return &InputSystem{
		em:    em,
		clock: clock,
		walls: walls,
		held:  make(map[types.Key]bool),
	}
}

// KeyDown 记录按下的键
func (s *InputSystem) KeyDown(k types.Key) {
	s.held[k] = true
}

// KeyUp 记录松开的键
func (s *InputSystem) KeyUp(k types.Key) {
	delete(s.held, k)
}

// Held 某个键当前是否按住
func (s *InputSystem) Held(k types.Key) bool {
	return s.held[k]
}

// ReleaseAll 清空按键集合（切换房间或暂停时调用）
func (s *InputSystem) ReleaseAll() {
	clear(s.held)
}

// Sample 处理一次采样：移动、射击、更新玩家姿势
func (s *InputSystem) Sample() {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](s.em)
	if len(players) == 0 {
		return
	}
	player := players[0]
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, player); ok && health.Dead {
		return
	}

	moved := s.move(player)
	s.shoot(player)
	s.updateSprite(player, moved)
}

// firstHeld 返回 keys 中优先级最高的按住的键
func (s *InputSystem) firstHeld(keys [4]types.Key) (types.Key, bool) {
	for _, k := range keys {
		if s.held[k] {
			return k, true
		}
	}
	return 0, false
}

// move 按 左 > 右 > 上 > 下 的优先级移动玩家，撞到阻挡物立即回退
func (s *InputSystem) move(player ecs.EntityID) bool {
	key, ok := s.firstHeld(types.MovementKeys)
	if !ok {
		return false
	}
	pc, _ := ecs.GetComponent[*components.PlayerComponent](s.em, player)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, player)

	dir := key.Direction()
	switch dir {
	case types.DirLeft:
		if pos.X > config.PlayerMinX {
			pos.X -= pc.Speed
		}
	case types.DirRight:
		if pos.X < config.PlayerMaxX {
			pos.X += pc.Speed
		}
	case types.DirUp:
		if pos.Y > config.PlayerMinY {
			pos.Y -= pc.Speed
		}
	case types.DirDown:
		if pos.Y < config.PlayerMaxY {
			pos.Y += pc.Speed
		}
	}
	pc.LastMove = dir
	s.walls.RollbackPlayer(player)
	return true
}

// shoot 按 A > D > W > S 的优先级发射胡萝卜，距上次射击不超过 PlayerFireInterval 时跳过
func (s *InputSystem) shoot(player ecs.EntityID) {
	key, ok := s.firstHeld(types.ShootKeys)
	if !ok {
		return
	}
	now := s.clock.Now()
	pc, _ := ecs.GetComponent[*components.PlayerComponent](s.em, player)
	if pc.HasShot && now-pc.LastShot <= config.PlayerFireInterval {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, player)

	dir := key.Direction()
	if _, err := entities.NewCarrotEntity(s.em, player, pos.X, pos.Y, dir); err != nil {
		log.Printf("[InputSystem] ⚠️ 发射胡萝卜失败: %v", err)
		return
	}
	pc.LastShot = now
	pc.HasShot = true
	s.lastShootDir = dir
}

// updateSprite 射击姿势优先于移动姿势
func (s *InputSystem) updateSprite(player ecs.EntityID, moved bool) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, player)
	if !ok {
		return
	}
	pc, _ := ecs.GetComponent[*components.PlayerComponent](s.em, player)
	switch {
	case pc.HasShot && s.clock.Since(pc.LastShot) < shootSpriteDuration:
		sprite.Key = "player_shoot_" + s.lastShootDir.String()
	case moved:
		dir := pc.LastMove
		if dir == types.DirDown {
			dir = types.DirRight
		}
		sprite.Key = "player_" + dir.String()
	}
}
