package utils

import "time"

// SimClock 模拟时钟
//
// 只在模拟 tick 推进时前进，暂停期间保持不变，
// 所有阶段计时都基于它计算经过时间，因此暂停会统一冻结所有计时器。
type SimClock struct {
	now time.Duration
}

// NewSimClock 创建从 0 开始的模拟时钟
func NewSimClock() *SimClock {
	return &SimClock{}
}

// Now 返回当前模拟时间
func (c *SimClock) Now() time.Duration {
	return c.now
}

// Advance 推进模拟时间
func (c *SimClock) Advance(d time.Duration) {
	c.now += d
}

// Since 返回从 t 到现在经过的模拟时间
func (c *SimClock) Since(t time.Duration) time.Duration {
	return c.now - t
}
