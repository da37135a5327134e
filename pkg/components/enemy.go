package components

import (
	"time"

	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/types"
)

// AlhoStage 大蒜的剥皮阶段，由剩余生命值决定
type AlhoStage int

const (
	AlhoWhole       AlhoStage = iota // 完整（静止）
	AlhoDentalho                     // 蒜瓣
	AlhoDescascalho                  // 剥皮（最快）
)

// EnemyComponent 普通敌人的原型专属状态
type EnemyComponent struct {
	Kind  types.EnemyKind
	Cycle PhaseCycle

	// 周期射击（Prato）
	LastFire time.Duration
	HasFired bool

	// 同伴计数（Morcerango）
	InitialEnemies int
	CountRecorded  bool

	// 剥皮阶段（Alho）
	Stage AlhoStage

	// 受击外观（Chocochato）
	DamagedSince time.Duration
	Damaged      bool

	// 当前的拳臂或激光（QueijoBoxer、SlimeBot、GigaBot）
	Hazard ecs.EntityID
	// 开始翻滚时的方向，方向改变即停止翻滚（AlgodogDoce）
	RollDirection types.Direction
}

// BossComponent Boss 的专属状态
//
// 一个 Boss 会组合多个攻击循环，Step 记录当前循环内的子阶段，
// LastAttack 记录交替攻击模式的上一次选择。
type BossComponent struct {
	Kind  types.BossKind
	Name  string
	Cycle PhaseCycle

	Step       int
	LastAttack int
	LastFire   time.Duration
	Side       types.Direction
	// 随机选中的位置（Cappuccino 的站位、Cerbero 的缺口）
	Slot int
	// 进入暴露阶段时的生命值（Cappuccino）
	HealthAtExpose int
	// 预警的行（NaveMaeranha）
	Rows []float64
	// 冲锋方向（CerberoNimbus）
	Heading types.Direction
	// 当前的单体攻击（叉子、大刀、火焰、重拳）
	Hazard ecs.EntityID
}
