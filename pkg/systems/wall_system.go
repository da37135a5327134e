package systems

import (
	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
)

// WallSystem 处理角色与墙体的接触：沿移动方向的反方向回退一步
type WallSystem struct {
	em       *ecs.EntityManager
	cw       *CollisionWorld
	resolver *CombatResolver
	rng      utils.RandomSource
}

// NewWallSystem 创建墙体系统
func NewWallSystem(em *ecs.EntityManager, cw *CollisionWorld, resolver *CombatResolver, rng utils.RandomSource) *WallSystem {
	return &WallSystem{em: em, cw: cw, resolver: resolver, rng: rng}
}

// Update 回退撞墙的玩家和所有移动中的地面敌人
//
// 每个 tick 只检查墙体和关闭的门；Boss 和 Chocochato 只在玩家主动移动时阻挡。
func (ws *WallSystem) Update() {
	if player, ok := ws.resolver.Player(); ok {
		ws.rollbackPlayer(player, false)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.ActorComponent](ws.em) {
		ws.rollbackEnemy(id)
	}
}

// RollbackPlayer 玩家与阻挡物重叠时沿最近移动方向的反方向回退
//
// 阻挡物包括墙体、关闭的门、Chocochato 和 Boss。
// 危险墙体和 Boss 在接触时还会对玩家造成伤害。
//
// 返回:
//   - bool: 是否发生了回退
func (ws *WallSystem) RollbackPlayer(player ecs.EntityID) bool {
	return ws.rollbackPlayer(player, true)
}

func (ws *WallSystem) rollbackPlayer(player ecs.EntityID, actors bool) bool {
	hurts, ok := ws.playerBlocker(player, actors)
	if !ok {
		return false
	}
	pc, _ := ecs.GetComponent[*components.PlayerComponent](ws.em, player)
	pos, _ := ecs.GetComponent[*components.PositionComponent](ws.em, player)
	dx, dy := pc.LastMove.Vector()
	pos.Move(-dx*pc.Speed, -dy*pc.Speed)
	// 回退不能把玩家推出场地
	pos.X = clamp(pos.X, config.PlayerMinX, config.PlayerMaxX)
	pos.Y = clamp(pos.Y, config.PlayerMinY, config.PlayerMaxY)
	if hurts {
		ws.resolver.DamagePlayer()
	}
	return true
}

// playerBlocker 玩家是否与阻挡物重叠，以及接触是否造成伤害
// actors 为 false 时只考虑墙体和关闭的门
func (ws *WallSystem) playerBlocker(player ecs.EntityID, actors bool) (hurts, blocked bool) {
	if wall, ok := ws.cw.FirstOverlap(player, types.LayerWall); ok {
		w, _ := ecs.GetComponent[*components.WallComponent](ws.em, wall)
		return w != nil && w.Hazardous, true
	}
	if door, ok := ws.cw.FirstOverlap(player, types.LayerDoor); ok {
		if d, _ := ecs.GetComponent[*components.DoorComponent](ws.em, door); d != nil && !d.Open {
			return false, true
		}
	}
	if !actors {
		return false, false
	}
	r, ok := ws.cw.Rect(player)
	if !ok {
		return false, false
	}
	for _, id := range ws.cw.Overlapping(r, types.LayerEnemy) {
		if boss, ok := ecs.GetComponent[*components.BossComponent](ws.em, id); ok {
			return !boss.Cycle.Is(components.PhaseDying), true
		}
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](ws.em, id); ok && enemy.Kind == types.EnemyChocochato {
			return false, true
		}
	}
	return false, false
}

// rollbackEnemy 移动中的地面敌人撞墙后回退并掉头，大蒜随机选择新方向
func (ws *WallSystem) rollbackEnemy(id ecs.EntityID) {
	actor, _ := ecs.GetComponent[*components.ActorComponent](ws.em, id)
	if actor.Speed == 0 || actor.Flying || !ws.cw.OverlapsLayer(id, types.LayerWall) {
		return
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](ws.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](ws.em, id)
	dx, dy := actor.Direction.Vector()
	pos.Move(-dx*actor.Speed, -dy*actor.Speed)
	if enemy.Kind == types.EnemyAlho {
		actor.Direction = types.CardinalDirections[ws.rng.Intn(len(types.CardinalDirections))]
		return
	}
	actor.Direction = actor.Direction.Opposite()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
