package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Direction 朝向/移动方向
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// CardinalDirections 四个基本方向，顺序固定（随机选方向时按下标取值）
var CardinalDirections = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// Opposite 返回相反方向
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// Vector 返回方向对应的单位向量（屏幕坐标系，y 轴向下）
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Horizontal 是否为水平方向
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// ParseDirection 解析方向名称（left/right/up/down）
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "", "none":
		return DirNone, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", s)
	}
}

// UnmarshalYAML 允许在 YAML 中直接书写方向名称
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDirection(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
