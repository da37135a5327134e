package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、敌人和 Boss
type HealthComponent struct {
	Current int  // 当前生命值
	Max     int  // 最大生命值
	Dead    bool // 死亡转换是否已经发生（只会发生一次）
}

// Alive 是否存活
func (h *HealthComponent) Alive() bool {
	return !h.Dead
}
