package systems

import (
	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/types"
)

// Overlaps 判断两个轴对齐包围盒是否重叠
// 左/上边界包含、右/下边界不包含，仅接触边缘不算重叠
func Overlaps(a, b types.Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// OutOfBounds 判断包围盒是否部分或全部位于竞技场之外
func OutOfBounds(r types.Rect) bool {
	return r.X < 0 || r.X > config.ArenaWidth-r.W || r.Y < 0 || r.Y > config.ArenaHeight-r.H
}

// CollisionWorld 当前房间内可碰撞实体的查询视图
//
// 只包含处于激活状态的实体：已失活的投射物、已死亡的角色、
// 已标记删除的实体都会立即从所有查询中排除。
// 查询结果按实体创建顺序返回。
type CollisionWorld struct {
	em *ecs.EntityManager
}

// NewCollisionWorld 创建碰撞查询视图
func NewCollisionWorld(em *ecs.EntityManager) *CollisionWorld {
	return &CollisionWorld{em: em}
}

// Rect 返回实体的包围盒
func (cw *CollisionWorld) Rect(id ecs.EntityID) (types.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](cw.em, id)
	if !ok {
		return types.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](cw.em, id)
	if !ok {
		return types.Rect{}, false
	}
	return types.Rect{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height}, true
}

// Layer 返回实体的碰撞层，没有碰撞组件时返回 LayerNone
func (cw *CollisionWorld) Layer(id ecs.EntityID) types.Layer {
	col, ok := ecs.GetComponent[*components.CollisionComponent](cw.em, id)
	if !ok {
		return types.LayerNone
	}
	return col.Layer()
}

// IsActive 实体当前是否参与碰撞
func (cw *CollisionWorld) IsActive(id ecs.EntityID) bool {
	if !cw.em.Exists(id) || cw.em.IsMarkedForDestruction(id) {
		return false
	}
	if cw.Layer(id) == types.LayerNone {
		return false
	}
	if proj, ok := ecs.GetComponent[*components.ProjectileComponent](cw.em, id); ok && !proj.Active {
		return false
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](cw.em, id); ok && health.Dead {
		return false
	}
	return true
}

// Collidables 返回指定碰撞层中所有激活的实体
func (cw *CollisionWorld) Collidables(layer types.Layer) []ecs.EntityID {
	all := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](cw.em)
	result := make([]ecs.EntityID, 0, len(all))
	for _, id := range all {
		if cw.Layer(id) == layer && cw.IsActive(id) {
			result = append(result, id)
		}
	}
	return result
}

// Overlapping 返回指定层中与矩形 r 重叠的所有激活实体
func (cw *CollisionWorld) Overlapping(r types.Rect, layer types.Layer) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range cw.Collidables(layer) {
		if other, ok := cw.Rect(id); ok && Overlaps(r, other) {
			result = append(result, id)
		}
	}
	return result
}

// FirstOverlap 返回指定层中第一个与实体 id 重叠的激活实体（不含自身）
//
// 是否允许交互由发起方的碰撞层通过 types.MayInteract 决定。
func (cw *CollisionWorld) FirstOverlap(id ecs.EntityID, layer types.Layer) (ecs.EntityID, bool) {
	if !cw.IsActive(id) || !types.MayInteract(cw.Layer(id), layer) {
		return 0, false
	}
	r, ok := cw.Rect(id)
	if !ok {
		return 0, false
	}
	for _, other := range cw.Overlapping(r, layer) {
		if other != id {
			return other, true
		}
	}
	return 0, false
}

// OverlapsLayer 实体 id 是否与指定层中的任意激活实体重叠
func (cw *CollisionWorld) OverlapsLayer(id ecs.EntityID, layer types.Layer) bool {
	_, ok := cw.FirstOverlap(id, layer)
	return ok
}

// OverlapsEntity 两个实体是否都处于激活状态且互相重叠
func (cw *CollisionWorld) OverlapsEntity(a, b ecs.EntityID) bool {
	if !cw.IsActive(a) || !cw.IsActive(b) {
		return false
	}
	ra, okA := cw.Rect(a)
	rb, okB := cw.Rect(b)
	return okA && okB && Overlaps(ra, rb)
}

// OverlappingAny 返回与矩形 r 重叠、且碰撞层属于 layers 的所有激活实体，按创建顺序
func (cw *CollisionWorld) OverlappingAny(r types.Rect, layers ...types.Layer) []ecs.EntityID {
	all := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](cw.em)
	var result []ecs.EntityID
	for _, id := range all {
		layer := cw.Layer(id)
		wanted := false
		for _, l := range layers {
			if l == layer {
				wanted = true
				break
			}
		}
		if !wanted || !cw.IsActive(id) {
			continue
		}
		if other, ok := cw.Rect(id); ok && Overlaps(r, other) {
			result = append(result, id)
		}
	}
	return result
}
