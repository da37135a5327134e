package utils

import "math/rand/v2"

// RandomSource 可注入的随机源
// 攻击位置、缺口选择等随机决策都通过它完成，测试可固定种子断言确切序列
type RandomSource interface {
	// Intn 返回 [0, n) 内的随机整数，n <= 0 时返回 0
	Intn(n int) int
}

// SeededRandom 基于 PCG 的确定性随机源
type SeededRandom struct {
	r *rand.Rand
}

// NewSeededRandom 使用固定种子创建随机源
func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn 实现 RandomSource
func (s *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// SequenceRandom 按预设序列返回结果的随机源，序列耗尽后循环
// 用于测试中精确控制每一次随机决策
type SequenceRandom struct {
	Values []int
	next   int
}

// Intn 实现 RandomSource，返回值会被限制在 [0, n) 内
func (s *SequenceRandom) Intn(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
