package components

import (
	"time"

	"github.com/decker502/batata/pkg/types"
)

// ActorComponent 敌人和 Boss 的移动属性
type ActorComponent struct {
	Direction types.Direction // 当前朝向
	Speed     float64         // 每 tick 移动的像素数，0 表示静止
	Flying    bool            // 飞行单位不受墙体阻挡
	Range     float64         // 视线/激光/拳击的射程，0 表示无
}

// PlayerComponent 玩家的输入状态
type PlayerComponent struct {
	Speed    float64
	LastMove types.Direction // 最近一次移动方向，撞墙时沿反方向回退
	LastShot time.Duration   // 最近一次射击的模拟时间
	HasShot  bool
}

// WallComponent 墙体
type WallComponent struct {
	Hazardous bool // 接触时对玩家造成伤害
}

// DoorComponent 出口门
// 关闭时阻挡玩家，打开后玩家接触即通过
type DoorComponent struct {
	Open bool
}

// SpriteComponent 视觉资源键，由渲染端解析，找不到资源时绘制纯色矩形
type SpriteComponent struct {
	Key string
}
