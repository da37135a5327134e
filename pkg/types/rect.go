package types

// Rect 轴对齐包围盒，(X, Y) 为左上角
type Rect struct {
	X, Y, W, H float64
}
