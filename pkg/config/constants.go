package config

import "time"

// 竞技场与窗口
const (
	ArenaWidth  = 1300.0
	ArenaHeight = 750.0
	BlockSize   = 50.0

	GameWindowWidth  = 1300
	GameWindowHeight = 750
)

// 循环节奏
const (
	// SimTickInterval 模拟 tick 间隔
	SimTickInterval = 10 * time.Millisecond
	// InputSampleInterval 按键采样间隔
	InputSampleInterval = 16 * time.Millisecond
	// TicksPerSecond ebiten 的 TPS，与模拟 tick 对齐
	TicksPerSecond = 100
)

// 玩家
const (
	PlayerSize            = 50.0
	PlayerMaxHealth       = 5
	PlayerSpeed           = 4.0
	PlayerInvulnerability = 2000 * time.Millisecond
	PlayerFlickerInterval = 100 * time.Millisecond
	PlayerFireInterval    = 300 * time.Millisecond

	// 玩家可移动范围（左上角坐标的开区间）
	PlayerMinX = 0.0
	PlayerMaxX = 1250.0
	PlayerMinY = 0.0
	PlayerMaxY = 700.0

	// 普通房间出生点
	RoomPlayerStartX = 0.0
	RoomPlayerStartY = 375.0
	// Boss 房间出生点
	BossPlayerStartX = 650.0
	BossPlayerStartY = 700.0
)

// 出口门
const (
	RoomDoorX = 1280.0
	RoomDoorY = 325.0
	RoomDoorW = 20.0
	RoomDoorH = 100.0

	BossDoorX = 600.0
	BossDoorY = 0.0
	BossDoorW = 100.0
	BossDoorH = 20.0
)

// 投射物
const (
	ProjectileSpeed = 5.0

	CarrotDir    = 2.0
	CarrotLength = 24.0
	CarrotWidth  = 16.0

	KnifeDir    = 2.0
	KnifeLength = 40.0
	KnifeWidth  = 10.0
)

// 效果
const (
	PofLifetime  = 300 * time.Millisecond
	PofScale     = 1.5
	BossPofScale = 1.5
	AlertSize    = 50.0
)

// 普通敌人的计时
const (
	PratoFireInterval       = 1500 * time.Millisecond
	ArmandibulaWakeDelay    = 800 * time.Millisecond
	MorcerangoWakeDelay     = 400 * time.Millisecond
	QueijoBoxerPunchDelay   = 1000 * time.Millisecond
	ChocochatoDamagedSprite = 1000 * time.Millisecond
	AlgodogDoceRollDelay    = 600 * time.Millisecond
	SlimeBotIdle            = 1500 * time.Millisecond
	SlimeBotLaser           = 1000 * time.Millisecond

	// EnemyAlertSize 普通敌人头顶提示框的边长，提示框水平居中、位于敌人上方一格
	EnemyAlertSize = BlockSize * 2 / 3

	// QueijoBoxer 的拳臂宽度，以及拳臂与本体重叠的长度
	BoxerArmThickness = 25.0
	BoxerArmOverlap   = 5.0

	LaserThickness    = 25.0
	BigLaserThickness = 50.0

	AlhoFullHealth = 3
)

// Boss 通用
const (
	BossX      = 525.0
	BossY      = 100.0
	BossWidth  = 250.0
	BossHeight = 200.0

	// WarningCenterX/Y 场地中央的预警位置
	WarningCenterX = 650.0
	WarningCenterY = 375.0

	// HazardFireInterval 蛛网、霉菌球的发射间隔（严格大于）
	HazardFireInterval = 900 * time.Millisecond
)

// Boss 攻击节奏
const (
	CappuccinoIdle    = 500 * time.Millisecond
	CappuccinoExposed = 4000 * time.Millisecond

	GigaSlimeIdle    = 3500 * time.Millisecond
	GigaSlimeWarning = 1500 * time.Millisecond
	GigaSlimeFlame   = 2000 * time.Millisecond

	SirPlatohIdle    = 3000 * time.Millisecond
	SirPlatohWarning = 1000 * time.Millisecond

	MofadaIdle         = 3000 * time.Millisecond
	MofadaWarning      = 1000 * time.Millisecond
	MofadaBarrage      = 4000 * time.Millisecond
	MofadaPunchWarning = 600 * time.Millisecond

	CerberoShakeIdle    = 2000 * time.Millisecond
	CerberoShakeWarning = 500 * time.Millisecond
	CerberoShakeActive  = 500 * time.Millisecond
	CerberoChargeIdle   = 3000 * time.Millisecond
	CerberoChargeAlert  = 1000 * time.Millisecond
	CerberoChargeSpeed  = 3.0
	CerberoTopY         = 49.0

	LarryStringWarning = 1000 * time.Millisecond
	LarryDefeat        = 2000 * time.Millisecond

	NaveWarning  = 2000 * time.Millisecond
	NaveStrings  = 1000 * time.Millisecond
	NaveDefeat   = 5000 * time.Millisecond
	NaveHeight   = 250.0
	NaveWebCount = 4
)
