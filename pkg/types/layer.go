// Package types 定义共享的基础类型
package types

// Layer 碰撞层
// 决定实体之间是否会发生交互，实体创建后不可修改
type Layer int

const (
	// LayerNone 无碰撞层（提示框、爆炸烟雾等纯视觉实体）
	LayerNone Layer = iota
	LayerPlayer
	LayerEnemy
	LayerProjectile
	LayerWall
	LayerDoor
	LayerLineOfSight
)

// interactionMatrix 发起方 -> 可交互的目标层
var interactionMatrix = map[Layer][]Layer{
	LayerProjectile: {LayerEnemy, LayerWall, LayerPlayer, LayerProjectile},
	LayerPlayer:     {LayerEnemy, LayerWall, LayerDoor, LayerLineOfSight},
	LayerEnemy:      {LayerWall},
}

// MayInteract 判断发起方层是否可以与目标层交互
//
// 交互矩阵是非对称的：子弹会主动检测敌人，但敌人不会主动检测子弹。
func MayInteract(initiator, target Layer) bool {
	for _, l := range interactionMatrix[initiator] {
		if l == target {
			return true
		}
	}
	return false
}

// String 返回碰撞层名称
func (l Layer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerEnemy:
		return "enemy"
	case LayerProjectile:
		return "projectile"
	case LayerWall:
		return "wall"
	case LayerDoor:
		return "door"
	case LayerLineOfSight:
		return "line_of_sight"
	default:
		return "none"
	}
}
