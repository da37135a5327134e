package systems

import (
	"log"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/types"
)

// ProjectileSystem 管理投射物的生成、移动和失活
//
// 失活的投射物立即从碰撞查询中排除，并在本 tick 末尾被清理，永远不会重新激活。
type ProjectileSystem struct {
	em *ecs.EntityManager
}

// NewProjectileSystem 创建投射物系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{em: em}
}

// Spawn 生成一个激活的投射物，参数非法时记录日志并返回 0
func (ps *ProjectileSystem) Spawn(spec entities.ProjectileSpec) ecs.EntityID {
	id, err := entities.NewProjectileEntity(ps.em, spec)
	if err != nil {
		log.Printf("[ProjectileSystem] ⚠️ 生成投射物失败: %v", err)
		return 0
	}
	return id
}

// Advance 移动所有激活的投射物：x += dirX*speed, y += dirY*speed
// 移动后越界的投射物失活，静态危险区域不移动也不做越界检查
func (ps *ProjectileSystem) Advance() {
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](ps.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](ps.em, id)
		if !proj.Active || (proj.DirX == 0 && proj.DirY == 0) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		pos.Move(proj.DirX*proj.Speed, proj.DirY*proj.Speed)

		col, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, id)
		if ok && OutOfBounds(rectOf(pos, col)) {
			ps.Deactivate(id)
		}
	}
}

// Deactivate 使投射物失活，返回是否发生了状态变化（重复调用为空操作）
func (ps *ProjectileSystem) Deactivate(id ecs.EntityID) bool {
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](ps.em, id)
	if !ok || !proj.Active {
		return false
	}
	proj.Active = false
	ps.em.DestroyEntity(id)
	return true
}

// IsActive 投射物是否仍处于激活状态
func (ps *ProjectileSystem) IsActive(id ecs.EntityID) bool {
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](ps.em, id)
	return ok && proj.Active
}

// OwnedBy 返回 owner 拥有的指定种类的激活投射物，kind 为空时返回全部种类
func (ps *ProjectileSystem) OwnedBy(owner ecs.EntityID, kind components.ProjectileKind) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](ps.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](ps.em, id)
		if proj.Active && proj.OwnerID == owner && (kind == "" || proj.Kind == kind) {
			result = append(result, id)
		}
	}
	return result
}

// RetireOwnedBy 使 owner 拥有的指定种类投射物全部失活，kind 为空时处理全部种类
// 返回失活的数量
func (ps *ProjectileSystem) RetireOwnedBy(owner ecs.EntityID, kind components.ProjectileKind) int {
	count := 0
	for _, id := range ps.OwnedBy(owner, kind) {
		if ps.Deactivate(id) {
			count++
		}
	}
	return count
}

func rectOf(pos *components.PositionComponent, col *components.CollisionComponent) types.Rect {
	return types.Rect{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height}
}
