package types

// EnemyKind 普通敌人种类，取值与房间布局数据中的 kind 字段一致
type EnemyKind string

const (
	EnemySlime       EnemyKind = "slime"
	EnemyFlyme       EnemyKind = "flyme"
	EnemyPrato       EnemyKind = "prato"
	EnemyArmandibula EnemyKind = "armandibula"
	EnemyMorcerango  EnemyKind = "morcerango"
	EnemyQueijoBoxer EnemyKind = "queijo_boxer"
	EnemyChocochato  EnemyKind = "chocochato"
	EnemyAlgodogDoce EnemyKind = "algodog_doce"
	EnemySlimeBot    EnemyKind = "slime_bot"
	EnemyGigaBot     EnemyKind = "giga_bot"
	EnemyMalandranha EnemyKind = "malandranha"
	EnemyAlho        EnemyKind = "alho"
)

// AllEnemyKinds 全部敌人种类
var AllEnemyKinds = []EnemyKind{
	EnemySlime, EnemyFlyme, EnemyPrato, EnemyArmandibula, EnemyMorcerango, EnemyQueijoBoxer,
	EnemyChocochato, EnemyAlgodogDoce, EnemySlimeBot, EnemyGigaBot, EnemyMalandranha, EnemyAlho,
}

// Valid 是否为已知种类
func (k EnemyKind) Valid() bool {
	for _, known := range AllEnemyKinds {
		if k == known {
			return true
		}
	}
	return false
}

// BossKind Boss 编号
// 0 为隐藏 Boss，1-5 依次对应五个世界，6 为最终 Boss
type BossKind int

const (
	BossCappuccino BossKind = iota
	BossGigaSlime
	BossSirPlatoh
	BossMofadaBombada
	BossCerberoNimbus
	BossLarry
	BossNaveMaeranha
)

// BossCount Boss 总数（含隐藏 Boss）
const BossCount = 7

// Valid 是否为已知 Boss
func (b BossKind) Valid() bool {
	return b >= BossCappuccino && b <= BossNaveMaeranha
}
