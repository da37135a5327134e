package components

import (
	"errors"
	"fmt"
	"time"
)

// BehaviorType 定义实体的行为类型
// 用于 BehaviorSystem 决定如何处理该实体
type BehaviorType int

const (
	// BehaviorNone 无行为（墙体、门等静态实体）
	BehaviorNone BehaviorType = iota

	// 普通敌人
	BehaviorSlime       // 地面巡逻，接触伤害，碰墙反弹
	BehaviorFlyme       // 飞行巡逻，接触伤害
	BehaviorPrato       // 固定炮台，周期发射飞刀
	BehaviorArmandibula // 沉睡，玩家踩到后苏醒
	BehaviorMorcerango  // 沉睡，同伴减少后苏醒并飞行
	BehaviorQueijoBoxer // 视线内出拳
	BehaviorChocochato  // 静态阻挡
	BehaviorAlgodogDoce // 视线内翻滚冲锋，沿途留下棉花糖
	BehaviorSlimeBot    // 周期激光
	BehaviorGigaBot     // 大号周期激光
	BehaviorMalandranha // 飞行追踪玩家
	BehaviorAlho        // 分阶段的大蒜，受伤分裂

	// Boss
	BehaviorCappuccino
	BehaviorGigaSlime
	BehaviorSirPlatoh
	BehaviorMofadaBombada
	BehaviorCerberoNimbus
	BehaviorLarry
	BehaviorNaveMaeranha
)

// BehaviorComponent 行为组件
type BehaviorComponent struct {
	Type BehaviorType
}

// Phase 攻击循环的阶段
type Phase int

const (
	PhaseIdle     Phase = iota // 等待
	PhaseWarning               // 显示预警提示框
	PhaseActive                // 攻击生效
	PhaseSleeping              // 沉睡（免疫伤害）
	PhaseDying                 // 击败动画中
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWarning:
		return "warning"
	case PhaseActive:
		return "active"
	case PhaseSleeping:
		return "sleeping"
	case PhaseDying:
		return "dying"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrInvalidTransition 非法的阶段转换
var ErrInvalidTransition = errors.New("invalid phase transition")

// phaseTransitions 合法的阶段转换表，任意阶段都可以进入 PhaseDying
var phaseTransitions = map[Phase][]Phase{
	PhaseSleeping: {PhaseWarning},
	PhaseIdle:     {PhaseWarning, PhaseActive},
	PhaseWarning:  {PhaseActive, PhaseIdle},
	PhaseActive:   {PhaseIdle, PhaseWarning},
}

// CanTransition 是否允许 from -> to
func CanTransition(from, to Phase) bool {
	if to == PhaseDying {
		return from != PhaseDying
	}
	for _, p := range phaseTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// PhaseCycle 计时驱动的阶段状态
//
// 经过时间总是从进入当前阶段的时刻算起，而不是按绝对时间表。
type PhaseCycle struct {
	Phase Phase
	Since time.Duration // 进入当前阶段的模拟时间
}

// NewPhaseCycle 以初始阶段创建
func NewPhaseCycle(initial Phase, now time.Duration) PhaseCycle {
	return PhaseCycle{Phase: initial, Since: now}
}

// Enter 转换到新阶段并重置计时
func (c *PhaseCycle) Enter(next Phase, now time.Duration) error {
	if !CanTransition(c.Phase, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Phase, next)
	}
	c.Phase = next
	c.Since = now
	return nil
}

// Restart 保持当前阶段，重新开始计时
func (c *PhaseCycle) Restart(now time.Duration) {
	c.Since = now
}

// Elapsed 当前阶段已经持续的时间
func (c *PhaseCycle) Elapsed(now time.Duration) time.Duration {
	return now - c.Since
}

// Is 当前是否处于阶段 p
func (c *PhaseCycle) Is(p Phase) bool {
	return c.Phase == p
}
