package tty

import (
	"hash/fnv"
	"log"
	"math"
	"time"

	"github.com/decker502/batata/pkg/systems"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	effectLength  = 80 * time.Millisecond
	effectVolume  = 0.3
	musicVolume   = 0.08
	minToneFreq   = 220.0
	toneFreqSteps = 24 // 两个八度的半音
)

// effectTones 常用音效的固定音高，其余键按名称散列到 toneFor
var effectTones = map[string]float64{
	"hurt":    180,
	"kill":    660,
	"warning": 990,
	"door":    523.25,
	"laser":   1320,
}

// ToneAudio 终端版本的 AudioPlayer：用正弦音代替音频文件
//
// 音效是一个短促的音，背景音乐是一个持续的低音量音。
// speaker 初始化失败时静音，但播放状态照常维护。
type ToneAudio struct {
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicKey    string
	initialized bool
}

var _ systems.AudioPlayer = (*ToneAudio)(nil)

// NewToneAudio 创建音频播放器，尚未打开声卡
func NewToneAudio() *ToneAudio {
	return &ToneAudio{mixer: &beep.Mixer{}}
}

// Init 打开声卡
func (a *ToneAudio) Init() error {
	if a.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// Close 停止所有声音并关闭声卡
func (a *ToneAudio) Close() {
	if !a.initialized {
		return
	}
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	a.initialized = false
}

// toneFor 音频键对应的频率
func toneFor(key string) float64 {
	if f, ok := effectTones[key]; ok {
		return f
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	step := float64(h.Sum32() % toneFreqSteps)
	return minToneFreq * math.Pow(2, step/12)
}

func (a *ToneAudio) Play(key string, loop bool) {
	if loop {
		a.playMusic(key)
		return
	}
	if !a.initialized {
		return
	}
	tone, err := generators.SineTone(sampleRate, toneFor(key))
	if err != nil {
		log.Printf("[ToneAudio] 无法生成 %s: %v", key, err)
		return
	}
	a.add(withVolume(beep.Take(sampleRate.N(effectLength), tone), effectVolume))
}

func (a *ToneAudio) playMusic(key string) {
	if a.musicKey == key && a.music != nil {
		return
	}
	a.Stop()
	a.musicKey = key
	if !a.initialized {
		return
	}
	tone, err := generators.SineTone(sampleRate, toneFor(key)/2)
	if err != nil {
		log.Printf("[ToneAudio] 无法生成 %s: %v", key, err)
		return
	}
	a.music = &beep.Ctrl{Streamer: withVolume(tone, musicVolume)}
	a.add(a.music)
}

func (a *ToneAudio) add(s beep.Streamer) {
	speaker.Lock()
	a.mixer.Add(s)
	speaker.Unlock()
}

func (a *ToneAudio) Stop() {
	if a.music != nil {
		speaker.Lock()
		a.music.Paused = true
		speaker.Unlock()
	}
	a.music = nil
	a.musicKey = ""
}

func (a *ToneAudio) IsPlaying() bool {
	return a.musicKey != ""
}

// withVolume 线性音量转换为 effects.Volume 的对数音量
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
