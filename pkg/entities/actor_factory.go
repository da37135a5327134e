package entities

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/types"
)

// enemyBehaviors 敌人种类 -> 行为类型
var enemyBehaviors = map[types.EnemyKind]components.BehaviorType{
	types.EnemySlime:       components.BehaviorSlime,
	types.EnemyFlyme:       components.BehaviorFlyme,
	types.EnemyPrato:       components.BehaviorPrato,
	types.EnemyArmandibula: components.BehaviorArmandibula,
	types.EnemyMorcerango:  components.BehaviorMorcerango,
	types.EnemyQueijoBoxer: components.BehaviorQueijoBoxer,
	types.EnemyChocochato:  components.BehaviorChocochato,
	types.EnemyAlgodogDoce: components.BehaviorAlgodogDoce,
	types.EnemySlimeBot:    components.BehaviorSlimeBot,
	types.EnemyGigaBot:     components.BehaviorGigaBot,
	types.EnemyMalandranha: components.BehaviorMalandranha,
	types.EnemyAlho:        components.BehaviorAlho,
}

// bossBehaviors Boss -> 行为类型
var bossBehaviors = [types.BossCount]components.BehaviorType{
	components.BehaviorCappuccino,
	components.BehaviorGigaSlime,
	components.BehaviorSirPlatoh,
	components.BehaviorMofadaBombada,
	components.BehaviorCerberoNimbus,
	components.BehaviorLarry,
	components.BehaviorNaveMaeranha,
}

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - x, y: 出生点（左上角）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayerEntity(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, components.NewCollisionComponent(config.PlayerSize, config.PlayerSize, types.LayerPlayer))
	ecs.AddComponent(em, id, &components.HealthComponent{Current: config.PlayerMaxHealth, Max: config.PlayerMaxHealth})
	ecs.AddComponent(em, id, &components.InvulnerabilityComponent{
		Duration:     config.PlayerInvulnerability,
		FlickerEvery: config.PlayerFlickerInterval,
		Visible:      true,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{Speed: config.PlayerSpeed, LastMove: types.DirRight})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: "player"})
	return id
}

// NewEnemyEntity 创建普通敌人实体
//
// 沉睡型敌人（Armandibula、Morcerango）以 PhaseSleeping 开始，其余以 PhaseIdle 开始。
// 大蒜的剥皮阶段和速度由初始生命值决定。
//
// 参数:
//   - em: 实体管理器
//   - spawn: 房间布局中的敌人配置
//   - stats: 该种类的属性
//   - now: 当前模拟时间
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID
//   - error: 未知种类时返回错误
func NewEnemyEntity(em *ecs.EntityManager, spawn config.EnemySpawn, stats config.EnemyStats, now time.Duration) (ecs.EntityID, error) {
	behavior, ok := enemyBehaviors[spawn.Kind]
	if !ok {
		return 0, fmt.Errorf("unknown enemy kind %q", spawn.Kind)
	}

	health := stats.Health
	if spawn.Health > 0 {
		health = spawn.Health
	}
	dir := spawn.Direction
	if dir == types.DirNone {
		dir = types.DirRight
	}

	initial := components.PhaseIdle
	if spawn.Kind == types.EnemyArmandibula || spawn.Kind == types.EnemyMorcerango {
		initial = components.PhaseSleeping
	}

	enemy := &components.EnemyComponent{
		Kind:  spawn.Kind,
		Cycle: components.NewPhaseCycle(initial, now),
	}
	speed := stats.Speed
	if spawn.Kind == types.EnemyAlho {
		enemy.Stage = AlhoStageFor(health)
		speed = AlhoSpeed(enemy.Stage)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spawn.X, Y: spawn.Y})
	ecs.AddComponent(em, id, components.NewCollisionComponent(stats.Width, stats.Height, types.LayerEnemy))
	ecs.AddComponent(em, id, &components.HealthComponent{Current: health, Max: health})
	ecs.AddComponent(em, id, &components.ActorComponent{
		Direction: dir,
		Speed:     speed,
		Flying:    stats.Flying,
		Range:     spawn.Range,
	})
	ecs.AddComponent(em, id, enemy)
	ecs.AddComponent(em, id, &components.BehaviorComponent{Type: behavior})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: EnemySpriteKey(spawn.Kind, initial)})
	return id, nil
}

// NewBossEntity 创建 Boss 实体
func NewBossEntity(em *ecs.EntityManager, stats config.BossStats, now time.Duration) (ecs.EntityID, error) {
	if !stats.ID.Valid() {
		return 0, fmt.Errorf("unknown boss %d", stats.ID)
	}

	boss := &components.BossComponent{
		Kind:    stats.ID,
		Name:    stats.Name,
		Cycle:   components.NewPhaseCycle(components.PhaseIdle, now),
		Side:    types.DirLeft,
		Heading: types.DirDown,
	}
	switch stats.ID {
	case types.BossSirPlatoh, types.BossCerberoNimbus:
		// 首轮攻击：SirPlatoh 先掷叉子，CerberoNimbus 先抖落棉花糖
		boss.LastAttack = 1
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: stats.X, Y: stats.Y})
	ecs.AddComponent(em, id, components.NewCollisionComponent(stats.Width, stats.Height, types.LayerEnemy))
	ecs.AddComponent(em, id, &components.HealthComponent{Current: stats.Health, Max: stats.Health})
	ecs.AddComponent(em, id, &components.ActorComponent{Direction: types.DirDown})
	ecs.AddComponent(em, id, boss)
	ecs.AddComponent(em, id, &components.BehaviorComponent{Type: bossBehaviors[stats.ID]})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: BossSpriteKey(stats.ID)})

	log.Printf("[ActorFactory] 创建 Boss %s (ID: %d, HP: %d)", stats.Name, id, stats.Health)
	return id, nil
}

// AlhoStageFor 根据生命值确定大蒜阶段
func AlhoStageFor(health int) components.AlhoStage {
	switch {
	case health >= config.AlhoFullHealth:
		return components.AlhoWhole
	case health == 2:
		return components.AlhoDentalho
	default:
		return components.AlhoDescascalho
	}
}

// AlhoSpeed 各阶段的移动速度
func AlhoSpeed(stage components.AlhoStage) float64 {
	switch stage {
	case components.AlhoDentalho:
		return 2
	case components.AlhoDescascalho:
		return 4
	default:
		return 0
	}
}

// EnemySpriteKey 敌人在指定阶段的精灵键
func EnemySpriteKey(kind types.EnemyKind, phase components.Phase) string {
	switch phase {
	case components.PhaseSleeping:
		return string(kind) + "_sleeping"
	case components.PhaseWarning:
		return string(kind) + "_warning"
	case components.PhaseActive:
		return string(kind) + "_active"
	default:
		return string(kind)
	}
}

// BossSpriteKey Boss 精灵键
func BossSpriteKey(kind types.BossKind) string {
	return fmt.Sprintf("boss_%d", int(kind))
}
