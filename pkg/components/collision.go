package components

import "github.com/decker502/batata/pkg/types"

// CollisionComponent 定义实体的碰撞检测边界框和碰撞层
//
// 碰撞层只能在创建时指定，之后不可修改。
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
	layer  types.Layer
}

// NewCollisionComponent 创建碰撞组件
func NewCollisionComponent(width, height float64, layer types.Layer) *CollisionComponent {
	return &CollisionComponent{Width: width, Height: height, layer: layer}
}

// Layer 返回碰撞层
func (c *CollisionComponent) Layer() types.Layer {
	return c.layer
}
