package components

import "time"

// InvulnerabilityComponent 受伤后的无敌窗口
//
// 窗口内的所有伤害都会被忽略，期间精灵按 FlickerEvery 闪烁。
type InvulnerabilityComponent struct {
	Duration     time.Duration // 无敌时长
	FlickerEvery time.Duration // 闪烁间隔
	Since        time.Duration // 窗口开始的模拟时间
	Active       bool          // 是否处于无敌窗口
	Visible      bool          // 当前帧是否绘制（闪烁）
}

// Invulnerable 在模拟时间 now 是否无敌
//
// 直接按经过时间判断，不依赖 InvulnerabilitySystem 是否已经更新过 Active 标志。
func (c *InvulnerabilityComponent) Invulnerable(now time.Duration) bool {
	return c.Active && now-c.Since < c.Duration
}

// Start 开始新的无敌窗口
func (c *InvulnerabilityComponent) Start(now time.Duration) {
	c.Active = true
	c.Since = now
	c.Visible = false
}
