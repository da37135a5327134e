package components

import (
	"time"

	"github.com/decker502/batata/pkg/ecs"
)

// AlertBlinkInterval 提示框闪烁间隔
const AlertBlinkInterval = 100 * time.Millisecond

// AlertComponent 攻击预警提示框
// 纯视觉实体，没有碰撞层，不参与任何碰撞查询
type AlertComponent struct {
	OwnerID ecs.EntityID
	Active  bool
	Since   time.Duration
}

// Visible 闪烁：每 AlertBlinkInterval 切换一次
func (a *AlertComponent) Visible(now time.Duration) bool {
	return ((now-a.Since)/AlertBlinkInterval)%2 == 0
}

// PofComponent 击败烟雾，到期后自动移除
type PofComponent struct {
	Since    time.Duration
	Lifetime time.Duration
}

// Expired 是否已到期
func (p *PofComponent) Expired(now time.Duration) bool {
	return now-p.Since >= p.Lifetime
}
