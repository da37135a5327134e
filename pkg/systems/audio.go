package systems

// AudioPlayer 音频播放接口
// 资源缺失时实现应静默跳过，不返回错误
type AudioPlayer interface {
	// Play 播放音乐或音效，loop 为 true 时作为背景音乐循环播放
	Play(key string, loop bool)
	// Stop 停止当前背景音乐
	Stop()
	// IsPlaying 背景音乐是否正在播放
	IsPlaying() bool
}

// NopAudio 不发声的 AudioPlayer
type NopAudio struct{}

func (NopAudio) Play(string, bool) {}
func (NopAudio) Stop()             {}
func (NopAudio) IsPlaying() bool   { return false }
