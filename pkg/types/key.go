package types

// Key 游戏逻辑按键
// 与具体输入后端（ebiten 键盘、终端）解耦
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyShootLeft  // A
	KeyShootRight // D
	KeyShootUp    // W
	KeyShootDown  // S
)

// MovementKeys 移动键，按优先级排列：左 > 右 > 上 > 下
var MovementKeys = [4]Key{KeyLeft, KeyRight, KeyUp, KeyDown}

// ShootKeys 射击键，按优先级排列：A > D > W > S
var ShootKeys = [4]Key{KeyShootLeft, KeyShootRight, KeyShootUp, KeyShootDown}

// Direction 返回按键对应的方向
func (k Key) Direction() Direction {
	switch k {
	case KeyLeft, KeyShootLeft:
		return DirLeft
	case KeyRight, KeyShootRight:
		return DirRight
	case KeyUp, KeyShootUp:
		return DirUp
	case KeyDown, KeyShootDown:
		return DirDown
	default:
		return DirNone
	}
}
