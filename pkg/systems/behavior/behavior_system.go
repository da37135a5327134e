package behavior

import (
	"log"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
)

// BehaviorSystem 处理敌人和 Boss 的行为逻辑
// 根据实体的 BehaviorComponent 类型分发到各原型的处理函数，每个 tick 每个存活角色执行一次
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	clock         *utils.SimClock
	collision     *systems.CollisionWorld
	combat        *systems.CombatResolver
	projectiles   *systems.ProjectileSystem
	alerts        *systems.AlertSystem
	particles     *systems.ParticleSystem
	audio         systems.AudioPlayer
	rng           utils.RandomSource

	logFrameCounter int // 日志输出计数器（避免全局变量）
}

// 日志输出间隔常量
const LogOutputFrameInterval = 100 // 日志输出间隔（每N帧输出一次）

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - clock: 模拟时钟，所有阶段计时基于它
//   - cw: 碰撞查询视图
//   - combat: 战斗结算器（接触伤害、格挡反伤）
//   - ps: 投射物系统
//   - as: 预警提示框系统
//   - pts: 烟雾系统
//   - audio: 音效播放
//   - rng: 随机源
func NewBehaviorSystem(
	em *ecs.EntityManager,
	clock *utils.SimClock,
	cw *systems.CollisionWorld,
	combat *systems.CombatResolver,
	ps *systems.ProjectileSystem,
	as *systems.AlertSystem,
	pts *systems.ParticleSystem,
	audio systems.AudioPlayer,
	rng utils.RandomSource,
) *BehaviorSystem {
	if audio == nil {
		audio = systems.NopAudio{}
	}
	return &BehaviorSystem{
		entityManager: em,
		clock:         clock,
		collision:     cw,
		combat:        combat,
		projectiles:   ps,
		alerts:        as,
		particles:     pts,
		audio:         audio,
		rng:           rng,
	}
}

// Update 更新所有存活的角色
func (s *BehaviorSystem) Update() {
	entityList := ecs.GetEntitiesWith1[*components.BehaviorComponent](s.entityManager)

	s.logFrameCounter++
	if s.logFrameCounter%LogOutputFrameInterval == 1 && len(entityList) > 0 {
		log.Printf("[BehaviorSystem] 更新 %d 个行为实体 (t=%v)", len(entityList), s.now())
	}

	for _, entityID := range entityList {
		if s.entityManager.IsMarkedForDestruction(entityID) {
			continue
		}
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, entityID); ok && health.Dead {
			continue
		}
		behaviorComp, _ := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, entityID)

		// 根据行为类型分发
		switch behaviorComp.Type {
		case components.BehaviorSlime, components.BehaviorFlyme:
			s.handlePatrolBehavior(entityID)
		case components.BehaviorPrato:
			s.handlePratoBehavior(entityID)
		case components.BehaviorArmandibula:
			s.handleArmandibulaBehavior(entityID)
		case components.BehaviorMorcerango:
			s.handleMorcerangoBehavior(entityID)
		case components.BehaviorQueijoBoxer:
			s.handleQueijoBoxerBehavior(entityID)
		case components.BehaviorChocochato:
			s.handleChocochatoBehavior(entityID)
		case components.BehaviorAlgodogDoce:
			s.handleAlgodogDoceBehavior(entityID)
		case components.BehaviorSlimeBot, components.BehaviorGigaBot:
			s.handleLaserBotBehavior(entityID)
		case components.BehaviorMalandranha:
			s.handleMalandranhaBehavior(entityID)
		case components.BehaviorAlho:
			s.handleAlhoBehavior(entityID)

		case components.BehaviorCappuccino:
			s.handleCappuccinoBehavior(entityID)
		case components.BehaviorGigaSlime:
			s.handleGigaSlimeBehavior(entityID)
		case components.BehaviorSirPlatoh:
			s.handleSirPlatohBehavior(entityID)
		case components.BehaviorMofadaBombada:
			s.handleMofadaBombadaBehavior(entityID)
		case components.BehaviorCerberoNimbus:
			s.handleCerberoNimbusBehavior(entityID)
		case components.BehaviorLarry:
			s.handleLarryBehavior(entityID)
		case components.BehaviorNaveMaeranha:
			s.handleNaveMaeranhaBehavior(entityID)
		default:
			// 未知行为类型，记录警告
			if s.logFrameCounter%LogOutputFrameInterval == 1 {
				log.Printf("[BehaviorSystem] ⚠️ 实体 %d 有未知行为类型: %v", entityID, behaviorComp.Type)
			}
		}
	}
}

func (s *BehaviorSystem) now() time.Duration {
	return s.clock.Now()
}

// enter 转换阶段，非法转换记录日志后忽略
func (s *BehaviorSystem) enter(entityID ecs.EntityID, cycle *components.PhaseCycle, next components.Phase) bool {
	if err := cycle.Enter(next, s.now()); err != nil {
		log.Printf("[BehaviorSystem] ⚠️ 实体 %d: %v", entityID, err)
		return false
	}
	return true
}

// warn 播放预警音效并为 owner 生成一个提示框
func (s *BehaviorSystem) warn(owner ecs.EntityID, x, y, size float64) ecs.EntityID {
	s.audio.Play("warning", false)
	return s.alerts.Spawn(owner, x, y, size, size)
}

// hazard 生成一个属于 owner 的敌方投射物或静态危险区域
func (s *BehaviorSystem) hazard(owner ecs.EntityID, spec entities.ProjectileSpec) ecs.EntityID {
	spec.OwnerLayer = types.LayerEnemy
	spec.OwnerID = owner
	return s.projectiles.Spawn(spec)
}

// hazardActive 危险区域是否仍处于激活状态
func (s *BehaviorSystem) hazardActive(id ecs.EntityID) bool {
	return id != 0 && s.projectiles.IsActive(id)
}

// retire 使单个危险区域失活
func (s *BehaviorSystem) retire(id ecs.EntityID) {
	if id != 0 {
		s.projectiles.Deactivate(id)
	}
}

// actorParts 返回角色的位置、碰撞盒和移动属性
func (s *BehaviorSystem) actorParts(entityID ecs.EntityID) (*components.PositionComponent, *components.CollisionComponent, *components.ActorComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, entityID)
	actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, entityID)
	return pos, col, actor
}

// playerRect 玩家包围盒
func (s *BehaviorSystem) playerRect() (types.Rect, bool) {
	player, ok := s.combat.Player()
	if !ok {
		return types.Rect{}, false
	}
	return s.collision.Rect(player)
}

// playerIn 玩家是否与矩形 r 重叠
func (s *BehaviorSystem) playerIn(r types.Rect) bool {
	pr, ok := s.playerRect()
	return ok && systems.Overlaps(pr, r)
}

// step 沿当前方向移动一步，越出竞技场时退回并掉头
//
// reroll 为 true 时掉头改为随机选择新方向。
// 返回是否发生了掉头。
func (s *BehaviorSystem) step(pos *components.PositionComponent, col *components.CollisionComponent, actor *components.ActorComponent, reroll bool) bool {
	dx, dy := actor.Direction.Vector()
	pos.Move(dx*actor.Speed, dy*actor.Speed)
	if !systems.OutOfBounds(types.Rect{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height}) {
		return false
	}
	pos.Move(-dx*actor.Speed, -dy*actor.Speed)
	if reroll {
		actor.Direction = types.CardinalDirections[s.rng.Intn(len(types.CardinalDirections))]
	} else {
		actor.Direction = actor.Direction.Opposite()
	}
	return true
}

// setSprite 更新精灵键
func (s *BehaviorSystem) setSprite(entityID ecs.EntityID, key string) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID); ok {
		sprite.Key = key
	}
}
