package components

// PositionComponent 实体左上角的世界坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}

// Move 按偏移量移动
func (p *PositionComponent) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
}
