package game

import (
	"log"
	"path"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AssetsDir 音频表中的路径相对于此目录
const AssetsDir = "assets"

// AudioManager 按音频键播放音乐和音效
//
// 同一时间只有一首背景音乐；音效每次播放创建独立播放器，可以叠加。
// 键未配置或文件缺失时静默跳过（只记录一次日志）。
type AudioManager struct {
	resources    *ResourceManager
	settings     *SettingsManager
	table        *config.AudioConfig
	currentMusic *audio.Player
	currentKey   string
	failed       map[string]bool
}

var _ systems.AudioPlayer = (*AudioManager)(nil)

// NewAudioManager 创建音频管理器，settings 可为 nil（使用默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager, table *config.AudioConfig) *AudioManager {
	if sm == nil {
		sm = NewSettingsManager(nil)
	}
	return &AudioManager{
		resources: rm,
		settings:  sm,
		table:     table,
		failed:    make(map[string]bool),
	}
}

// Play 播放音频键；loop 为 true 时替换当前背景音乐
func (am *AudioManager) Play(key string, loop bool) {
	if loop {
		am.PlayMusic(key, true)
		return
	}
	am.PlaySound(key)
}

// PlaySound 播放一次音效，返回是否成功
func (am *AudioManager) PlaySound(key string) bool {
	s := am.settings.GetSettings()
	if !s.SoundEnabled {
		return false
	}
	p, ok := am.resolve(key)
	if !ok {
		return false
	}
	player, err := am.resources.NewSoundPlayer(p)
	if err != nil {
		am.fail(key, err)
		return false
	}
	player.SetVolume(s.SoundVolume)
	player.Play()
	return true
}

// PlayMusic 切换背景音乐；同一首正在播放时不重新开始
func (am *AudioManager) PlayMusic(key string, loop bool) bool {
	s := am.settings.GetSettings()
	if !s.MusicEnabled {
		return false
	}
	if am.currentKey == key && am.IsPlaying() {
		return true
	}
	am.Stop()

	p, ok := am.resolve(key)
	if !ok {
		return false
	}
	player, err := am.resources.LoadMusic(p, loop)
	if err != nil {
		am.fail(key, err)
		return false
	}
	player.SetVolume(s.MusicVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind %s: %v", key, err)
	}
	player.Play()
	am.currentMusic = player
	am.currentKey = key
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", key, s.MusicVolume)
	return true
}

// Stop 停止背景音乐
func (am *AudioManager) Stop() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
	am.currentMusic = nil
	am.currentKey = ""
}

// IsPlaying 背景音乐是否正在播放
func (am *AudioManager) IsPlaying() bool {
	return am.currentMusic != nil && am.currentMusic.IsPlaying()
}

// CurrentMusic 当前背景音乐键
func (am *AudioManager) CurrentMusic() string {
	return am.currentKey
}

// SetMusicVolume 修改音乐音量并立即应用
func (am *AudioManager) SetMusicVolume(volume float64) {
	am.settings.SetMusicVolume(volume)
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.settings.GetSettings().MusicVolume)
	}
}

func (am *AudioManager) resolve(key string) (string, bool) {
	if am.table == nil || am.failed[key] {
		return "", false
	}
	p, ok := am.table.Path(key)
	if !ok {
		am.fail(key, nil)
		return "", false
	}
	return path.Join(AssetsDir, p), true
}

func (am *AudioManager) fail(key string, err error) {
	if am.failed[key] {
		return
	}
	am.failed[key] = true
	if err == nil {
		log.Printf("[AudioManager] Unknown audio key: %s", key)
		return
	}
	log.Printf("[AudioManager] Audio %s unavailable: %v", key, err)
}
