package config

import (
	"fmt"

	"github.com/decker502/batata/pkg/embedded"
	"github.com/decker502/batata/pkg/types"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌人种类的属性
type EnemyStats struct {
	Health  int     `yaml:"health"`
	Speed   float64 `yaml:"speed"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Flying  bool    `yaml:"flying"`  // 飞行单位不受墙体阻挡
	Contact bool    `yaml:"contact"` // 接触玩家时造成伤害
}

// BossStats 单个 Boss 的属性
// 位置和尺寸为 0 时使用默认值（BossX, BossY, BossWidth, BossHeight）
type BossStats struct {
	ID       types.BossKind `yaml:"id"`
	Name     string         `yaml:"name"`
	Health   int            `yaml:"health"`
	HitSound string         `yaml:"hitSound"` // 受击音效键
	Contact  bool           `yaml:"contact"`
	X        float64        `yaml:"x"`
	Y        float64        `yaml:"y"`
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
}

// ActorStatsConfig 角色属性配置文件结构
type ActorStatsConfig struct {
	Enemies map[types.EnemyKind]EnemyStats `yaml:"enemies"`
	Bosses  []BossStats                    `yaml:"bosses"`
}

// LoadActorStats 从 YAML 文件加载角色属性配置
func LoadActorStats(filepath string) (*ActorStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read actor stats file %s: %w", filepath, err)
	}
	config, err := ParseActorStats(data)
	if err != nil {
		return nil, fmt.Errorf("invalid actor stats in %s: %w", filepath, err)
	}
	return config, nil
}

// ParseActorStats 解析并校验角色属性 YAML，缺省的 Boss 位置和尺寸会被补齐
func ParseActorStats(data []byte) (*ActorStatsConfig, error) {
	var config ActorStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse actor stats YAML: %w", err)
	}
	for i := range config.Bosses {
		b := &config.Bosses[i]
		if b.Width == 0 && b.Height == 0 {
			b.X, b.Y, b.Width, b.Height = BossX, BossY, BossWidth, BossHeight
		}
	}
	if err := validateActorStats(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// validateActorStats 验证角色属性配置的完整性和合法性
func validateActorStats(config *ActorStatsConfig) error {
	for _, kind := range types.AllEnemyKinds {
		stats, ok := config.Enemies[kind]
		if !ok {
			return fmt.Errorf("enemy %s: missing stats", kind)
		}
		if stats.Health < 1 {
			return fmt.Errorf("enemy %s: health must be at least 1, got %d", kind, stats.Health)
		}
		if stats.Speed < 0 {
			return fmt.Errorf("enemy %s: speed cannot be negative, got %v", kind, stats.Speed)
		}
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("enemy %s: size must be positive", kind)
		}
	}
	for kind := range config.Enemies {
		if !kind.Valid() {
			return fmt.Errorf("unknown enemy kind %q", kind)
		}
	}

	seen := make(map[types.BossKind]bool)
	for _, b := range config.Bosses {
		if !b.ID.Valid() {
			return fmt.Errorf("unknown boss id %d", b.ID)
		}
		if seen[b.ID] {
			return fmt.Errorf("boss %d: duplicate stats", b.ID)
		}
		seen[b.ID] = true
		if b.Health < 1 {
			return fmt.Errorf("boss %d: health must be at least 1, got %d", b.ID, b.Health)
		}
		if b.Name == "" {
			return fmt.Errorf("boss %d: name is required", b.ID)
		}
	}
	if len(seen) != types.BossCount {
		return fmt.Errorf("expected %d bosses, got %d", types.BossCount, len(seen))
	}
	return nil
}

// Enemy 获取敌人属性
func (c *ActorStatsConfig) Enemy(kind types.EnemyKind) (EnemyStats, bool) {
	stats, ok := c.Enemies[kind]
	return stats, ok
}

// Boss 获取 Boss 属性
func (c *ActorStatsConfig) Boss(id types.BossKind) (BossStats, bool) {
	for _, b := range c.Bosses {
		if b.ID == id {
			return b, true
		}
	}
	return BossStats{}, false
}
