package config

import (
	"fmt"
	"strings"

	"github.com/decker502/batata/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// AudioConfig 音频资源表
type AudioConfig struct {
	Music  map[string]string `yaml:"music"`  // 音乐键 -> 文件路径
	Sounds map[string]string `yaml:"sounds"` // 音效键 -> 文件路径
}

// LoadAudioConfig 从 YAML 文件加载音频资源表
func LoadAudioConfig(filepath string) (*AudioConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio config file %s: %w", filepath, err)
	}
	config, err := ParseAudioConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid audio config in %s: %w", filepath, err)
	}
	return config, nil
}

// ParseAudioConfig 解析并校验音频资源表
func ParseAudioConfig(data []byte) (*AudioConfig, error) {
	var config AudioConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse audio config YAML: %w", err)
	}
	for key, path := range config.Music {
		if err := validateAudioPath(path); err != nil {
			return nil, fmt.Errorf("music %s: %w", key, err)
		}
	}
	for key, path := range config.Sounds {
		if err := validateAudioPath(path); err != nil {
			return nil, fmt.Errorf("sound %s: %w", key, err)
		}
	}
	return &config, nil
}

func validateAudioPath(path string) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}
	switch {
	case strings.HasSuffix(path, ".wav"), strings.HasSuffix(path, ".mp3"), strings.HasSuffix(path, ".ogg"):
		return nil
	}
	return fmt.Errorf("unsupported audio format: %s", path)
}

// Path 查找音乐或音效键对应的文件路径（音乐优先）
func (c *AudioConfig) Path(key string) (string, bool) {
	if p, ok := c.Music[key]; ok {
		return p, true
	}
	p, ok := c.Sounds[key]
	return p, ok
}

// WorldMusicKey 世界 n 的背景音乐键
func WorldMusicKey(world int) string {
	return fmt.Sprintf("world%d", world)
}
