package entities

import (
	"fmt"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/types"
)

// ProjectileSpec 投射物的生成参数
type ProjectileSpec struct {
	Kind               components.ProjectileKind
	X, Y, W, H         float64
	DirX, DirY         float64
	Speed              float64
	Collidable         bool
	OwnerLayer         types.Layer
	OwnerID            ecs.EntityID
	ConsumeOnPlayerHit bool
	Solid              bool
}

// NewProjectileEntity 创建一个处于激活状态的投射物
//
// 尺寸必须为正，静态危险区域（激光、火焰、蛛丝）的方向为 0。
func NewProjectileEntity(em *ecs.EntityManager, spec ProjectileSpec) (ecs.EntityID, error) {
	if spec.W <= 0 || spec.H <= 0 {
		return 0, fmt.Errorf("projectile %s: size must be positive, got %vx%v", spec.Kind, spec.W, spec.H)
	}
	speed := spec.Speed
	if speed == 0 {
		speed = config.ProjectileSpeed
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, id, components.NewCollisionComponent(spec.W, spec.H, types.LayerProjectile))
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Kind:               spec.Kind,
		DirX:               spec.DirX,
		DirY:               spec.DirY,
		Speed:              speed,
		Collidable:         spec.Collidable,
		OwnerLayer:         spec.OwnerLayer,
		OwnerID:            spec.OwnerID,
		Active:             true,
		ConsumeOnPlayerHit: spec.ConsumeOnPlayerHit,
		Solid:              spec.Solid,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: projectileSpriteKey(spec)})
	return id, nil
}

func projectileSpriteKey(spec ProjectileSpec) string {
	key := string(spec.Kind)
	switch {
	case spec.DirX < 0:
		key += "_left"
	case spec.DirX > 0:
		key += "_right"
	case spec.DirY < 0:
		key += "_up"
	case spec.DirY > 0:
		key += "_down"
	}
	return key
}

// ShotSpec 从 50×50 的射手发出的直线投射物的位置、尺寸和方向
//
// 水平方向从射手左/右边缘的中点发出，垂直方向从上/下边缘的中点发出。
//
// 参数:
//   - x, y: 射手左上角
//   - dir: 发射方向
//   - length, width: 投射物沿飞行方向的长度和横向宽度
//   - step: 方向倍率
func ShotSpec(x, y float64, dir types.Direction, length, width, step float64) (rect types.Rect, dirX, dirY float64) {
	half := config.BlockSize / 2
	switch dir {
	case types.DirLeft:
		return types.Rect{X: x, Y: y + half, W: length, H: width}, -step, 0
	case types.DirRight:
		return types.Rect{X: x + config.BlockSize, Y: y + half, W: length, H: width}, step, 0
	case types.DirUp:
		return types.Rect{X: x + half, Y: y, W: width, H: length}, 0, -step
	default:
		return types.Rect{X: x + half, Y: y + config.BlockSize, W: width, H: length}, 0, step
	}
}

// NewCarrotEntity 创建玩家发射的胡萝卜
func NewCarrotEntity(em *ecs.EntityManager, playerID ecs.EntityID, x, y float64, dir types.Direction) (ecs.EntityID, error) {
	rect, dx, dy := ShotSpec(x, y, dir, config.CarrotLength, config.CarrotWidth, config.CarrotDir)
	return NewProjectileEntity(em, ProjectileSpec{
		Kind:       components.ProjectileCarrot,
		X:          rect.X,
		Y:          rect.Y,
		W:          rect.W,
		H:          rect.H,
		DirX:       dx,
		DirY:       dy,
		OwnerLayer: types.LayerPlayer,
		OwnerID:    playerID,
	})
}

// NewAlertEntity 创建预警提示框
func NewAlertEntity(em *ecs.EntityManager, ownerID ecs.EntityID, x, y, w, h float64, now time.Duration) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.AlertComponent{OwnerID: ownerID, Active: true, Since: now})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: "alert"})
	// 提示框没有碰撞层，尺寸只用于绘制
	ecs.AddComponent(em, id, components.NewCollisionComponent(w, h, types.LayerNone))
	return id
}

// NewPofEntity 创建击败烟雾，size 为正方形边长
func NewPofEntity(em *ecs.EntityManager, x, y, size float64, now time.Duration) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.PofComponent{Since: now, Lifetime: config.PofLifetime})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: "pof"})
	ecs.AddComponent(em, id, components.NewCollisionComponent(size, size, types.LayerNone))
	return id
}

// NewWallEntity 创建墙体
func NewWallEntity(em *ecs.EntityManager, spec config.WallSpec, hazardous bool) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, id, components.NewCollisionComponent(spec.W, spec.H, types.LayerWall))
	ecs.AddComponent(em, id, &components.WallComponent{Hazardous: hazardous})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: "wall"})
	return id
}

// NewDoorEntity 创建关闭状态的出口门
func NewDoorEntity(em *ecs.EntityManager, x, y, w, h float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, components.NewCollisionComponent(w, h, types.LayerDoor))
	ecs.AddComponent(em, id, &components.DoorComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{Key: "door_closed"})
	return id
}
