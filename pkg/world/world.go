// Package world 组装单个房间的模拟
//
// World 在进入房间时创建，离开房间时丢弃。所有系统都在同一个 goroutine 中
// 按固定顺序推进，每个 tick 结束时发布一份不可变的 Snapshot 给渲染端。
package world

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/systems/behavior"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
)

// SirenMusic 击败 Larry 后循环播放的警报
const SirenMusic = "siren"

// Host 承载房间的屏幕宿主
type Host interface {
	// TransitionTo 切换到指定屏幕
	TransitionTo(screen types.Screen)
	// ShowModal 显示一条模态消息
	ShowModal(message string)
}

// Deps 房间模拟的外部依赖
type Deps struct {
	Stats *config.ActorStatsConfig
	Audio systems.AudioPlayer // 为 nil 时静音
	Host  Host                // 为 nil 时只记录结果，不切换屏幕
	Rand  utils.RandomSource  // 为 nil 时使用固定种子
}

// World 单个房间的模拟
type World struct {
	em          *ecs.EntityManager
	clock       *utils.SimClock
	cw          *systems.CollisionWorld
	projectiles *systems.ProjectileSystem
	alerts      *systems.AlertSystem
	particles   *systems.ParticleSystem
	combat      *systems.CombatResolver
	behavior    *behavior.BehaviorSystem
	walls       *systems.WallSystem
	invuln      *systems.InvulnerabilitySystem
	input       *systems.InputSystem
	roomState   *systems.RoomStateSystem
	audio       systems.AudioPlayer
	host        Host

	layout config.RoomLayout
	player ecs.EntityID
	door   ecs.EntityID
	boss   ecs.EntityID

	simAccumulator   time.Duration
	inputAccumulator time.Duration
	ticks            uint64
	paused           bool
	outcome          systems.RoomOutcome
	snapshot         Snapshot
}

// New 按房间布局创建模拟
//
// 参数:
//   - layout: 房间的初始布局
//   - deps: 外部依赖，Stats 必须提供
//
// 返回:
//   - *World: 已放置好全部实体的房间
//   - error: 缺少角色属性或实体创建失败时返回错误
func New(layout config.RoomLayout, deps Deps) (*World, error) {
	if deps.Stats == nil {
		return nil, fmt.Errorf("failed to create world: actor stats are required")
	}
	if deps.Audio == nil {
		deps.Audio = systems.NopAudio{}
	}
	if deps.Rand == nil {
		deps.Rand = utils.NewSeededRandom(1)
	}

	w := &World{
		em:     ecs.NewEntityManager(),
		clock:  utils.NewSimClock(),
		audio:  deps.Audio,
		host:   deps.Host,
		layout: layout,
	}
	w.cw = systems.NewCollisionWorld(w.em)
	w.projectiles = systems.NewProjectileSystem(w.em)
	w.alerts = systems.NewAlertSystem(w.em, w.clock)
	w.particles = systems.NewParticleSystem(w.em, w.clock)
	w.combat = systems.NewCombatResolver(w.em, w.cw, w.clock, deps.Audio, w.projectiles, w.alerts, w.particles)
	w.behavior = behavior.NewBehaviorSystem(w.em, w.clock, w.cw, w.combat, w.projectiles, w.alerts, w.particles, deps.Audio, deps.Rand)
	w.walls = systems.NewWallSystem(w.em, w.cw, w.combat, deps.Rand)
	w.invuln = systems.NewInvulnerabilitySystem(w.em, w.clock)
	w.input = systems.NewInputSystem(w.em, w.clock, w.walls)

	if err := w.populate(layout, deps.Stats); err != nil {
		return nil, err
	}
	w.roomState = systems.NewRoomStateSystem(w.em, w.cw, deps.Audio, w.combat, w.door, w.boss)
	w.snapshot = w.buildSnapshot()

	log.Printf("[World] 进入房间 %s：%d 面墙，%d 个敌人", describe(layout), len(layout.Walls), len(layout.Enemies))
	return w, nil
}

// populate 放置墙体、门、敌人或 Boss、玩家
func (w *World) populate(layout config.RoomLayout, stats *config.ActorStatsConfig) error {
	for _, wall := range layout.Walls {
		entities.NewWallEntity(w.em, wall, layout.HazardousWalls)
	}

	if layout.IsBoss {
		w.door = entities.NewDoorEntity(w.em, config.BossDoorX, config.BossDoorY, config.BossDoorW, config.BossDoorH)
		bossStats, ok := stats.Boss(layout.Boss)
		if !ok {
			return fmt.Errorf("failed to create boss %d: missing stats", layout.Boss)
		}
		id, err := entities.NewBossEntity(w.em, bossStats, w.clock.Now())
		if err != nil {
			return fmt.Errorf("failed to create boss %d: %w", layout.Boss, err)
		}
		w.boss = id
		w.combat.SetHitSound(bossStats.ID, bossStats.HitSound)
		w.player = entities.NewPlayerEntity(w.em, config.BossPlayerStartX, config.BossPlayerStartY)
		return nil
	}

	w.door = entities.NewDoorEntity(w.em, config.RoomDoorX, config.RoomDoorY, config.RoomDoorW, config.RoomDoorH)
	for i, spawn := range layout.Enemies {
		enemyStats, ok := stats.Enemy(spawn.Kind)
		if !ok {
			return fmt.Errorf("failed to create enemy %d: missing stats for %q", i, spawn.Kind)
		}
		if _, err := entities.NewEnemyEntity(w.em, spawn, enemyStats, w.clock.Now()); err != nil {
			return fmt.Errorf("failed to create enemy %d: %w", i, err)
		}
	}
	w.player = entities.NewPlayerEntity(w.em, config.RoomPlayerStartX, config.RoomPlayerStartY)
	return nil
}

// Tick 推进一个 10ms 的模拟步
//
// 顺序固定：投射物移动与结算、角色行为、墙体回退、烟雾到期、无敌窗口、房间状态，
// 最后清理标记删除的实体并发布快照。暂停或房间已结束时为空操作。
func (w *World) Tick() {
	if w.paused || w.outcome == systems.OutcomeDoorPassed || w.outcome == systems.OutcomeGameOver {
		return
	}
	w.clock.Advance(config.SimTickInterval)
	w.ticks++

	w.projectiles.Advance()
	w.combat.ResolveProjectiles()
	w.behavior.Update()
	w.walls.Update()
	w.particles.Update()
	w.invuln.Update()
	outcome := w.roomState.Update()

	w.em.RemoveMarkedEntities()
	if outcome != systems.OutcomeNone {
		w.outcome = outcome
		w.report(outcome)
	}
	w.snapshot = w.buildSnapshot()
}

// Advance 按真实经过时间推进：每 10ms 一个模拟 tick，每 16ms 一次按键采样
// 两个累加器互相独立，都在调用方的 goroutine 上执行
func (w *World) Advance(elapsed time.Duration) {
	if w.paused || elapsed <= 0 {
		return
	}
	w.inputAccumulator += elapsed
	for w.inputAccumulator >= config.InputSampleInterval {
		w.inputAccumulator -= config.InputSampleInterval
		if w.Finished() {
			break
		}
		w.input.Sample()
	}
	w.simAccumulator += elapsed
	for w.simAccumulator >= config.SimTickInterval {
		w.simAccumulator -= config.SimTickInterval
		if w.Finished() {
			break
		}
		w.Tick()
	}
}

// SampleInput 立即执行一次按键采样
func (w *World) SampleInput() {
	if !w.paused && !w.Finished() {
		w.input.Sample()
	}
}

// report 把房间结果交给宿主
func (w *World) report(outcome systems.RoomOutcome) {
	log.Printf("[World] 房间 %s 结果: %s", describe(w.layout), outcome)
	if w.host == nil {
		return
	}
	switch outcome {
	case systems.OutcomeDoorPassed:
		w.host.TransitionTo(types.ScreenNextRoom)
	case systems.OutcomeGameOver:
		w.host.TransitionTo(types.ScreenGameOver)
	case systems.OutcomeBossDefeated:
		switch w.layout.Boss {
		case types.BossNaveMaeranha:
			w.host.TransitionTo(types.ScreenVictory)
		case types.BossLarry:
			// Larry 逃走，警报响起，门在通话结束前已经打开
			w.audio.Play(SirenMusic, true)
			w.host.ShowModal(progress.LarryEscapeMessage)
		}
	}
}

// KeyDown 记录按键按下
func (w *World) KeyDown(k types.Key) { w.input.KeyDown(k) }

// KeyUp 记录按键松开
func (w *World) KeyUp(k types.Key) { w.input.KeyUp(k) }

// SetPaused 暂停或继续，暂停时模拟时钟冻结且松开所有按键
func (w *World) SetPaused(paused bool) {
	if paused == w.paused {
		return
	}
	w.paused = paused
	if paused {
		w.input.ReleaseAll()
	}
	w.snapshot.Paused = paused
	log.Printf("[World] 暂停: %v", paused)
}

// Paused 是否暂停
func (w *World) Paused() bool { return w.paused }

// Outcome 最近一次的房间结果
func (w *World) Outcome() systems.RoomOutcome { return w.outcome }

// Finished 房间是否已经结束（穿过门或玩家死亡）
func (w *World) Finished() bool {
	return w.outcome == systems.OutcomeDoorPassed || w.outcome == systems.OutcomeGameOver
}

// Layout 房间布局
func (w *World) Layout() config.RoomLayout { return w.layout }

// Now 当前模拟时间
func (w *World) Now() time.Duration { return w.clock.Now() }

// Snapshot 最近一个 tick 结束时的快照
func (w *World) Snapshot() Snapshot { return w.snapshot }

func describe(layout config.RoomLayout) string {
	if layout.IsBoss {
		return fmt.Sprintf("boss-%d", layout.Boss)
	}
	return fmt.Sprintf("room-%d", layout.Room)
}
