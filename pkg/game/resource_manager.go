package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // PNG 解码器
	"io"
	"log"
	"path"
	"strings"

	"github.com/decker502/batata/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SpriteDir 精灵图片目录，精灵键 k 对应 SpriteDir/k.png
const SpriteDir = "assets/images"

// ResourceManager 图片与音频资源的加载和缓存
//
// 所有路径都通过 embedded 包解析（"assets/" 前缀指向启动时挂载的素材目录）。
// 非线程安全：只在游戏主循环中使用。
type ResourceManager struct {
	audioContext *audio.Context
	imageCache   map[string]*ebiten.Image
	missing      map[string]bool   // 已记录过缺失的精灵键
	soundCache   map[string][]byte // 路径 -> 解码后的 PCM
	musicCache   map[string]*audio.Player
}

// NewResourceManager 创建资源管理器，audioContext 为 nil 时音频加载返回错误
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext: audioContext,
		imageCache:   make(map[string]*ebiten.Image),
		missing:      make(map[string]bool),
		soundCache:   make(map[string][]byte),
		musicCache:   make(map[string]*audio.Player),
	}
}

// LoadImage 加载并缓存图片
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[p]; ok {
		return img, nil
	}
	file, err := embedded.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[p] = img
	return img, nil
}

// Lookup 按精灵键查找图片，缺失时返回 nil（调用方绘制纯色矩形）
// 每个缺失的键只记录一次日志
func (rm *ResourceManager) Lookup(key string) *ebiten.Image {
	if key == "" || rm.missing[key] {
		return nil
	}
	img, err := rm.LoadImage(path.Join(SpriteDir, key+".png"))
	if err != nil {
		rm.missing[key] = true
		log.Printf("[ResourceManager] Sprite %s unavailable: %v", key, err)
		return nil
	}
	return img
}

// Preload 预加载一组精灵，返回成功加载的数量
func (rm *ResourceManager) Preload(keys []string) int {
	loaded := 0
	for _, key := range keys {
		if rm.Lookup(key) != nil {
			loaded++
		}
	}
	return loaded
}

// LoadSoundEffect 加载音效并缓存解码后的 PCM，每次播放创建独立的播放器
func (rm *ResourceManager) LoadSoundEffect(p string) ([]byte, error) {
	if pcm, ok := rm.soundCache[p]; ok {
		return pcm, nil
	}
	stream, err := rm.decode(p)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect %s: %w", p, err)
	}
	rm.soundCache[p] = pcm
	return pcm, nil
}

// NewSoundPlayer 为已缓存的音效创建一次性播放器
func (rm *ResourceManager) NewSoundPlayer(p string) (*audio.Player, error) {
	pcm, err := rm.LoadSoundEffect(p)
	if err != nil {
		return nil, err
	}
	return rm.audioContext.NewPlayerFromBytes(pcm), nil
}

// LoadMusic 加载音乐并缓存播放器；loop 为 true 时无限循环
func (rm *ResourceManager) LoadMusic(p string, loop bool) (*audio.Player, error) {
	cacheKey := fmt.Sprintf("%s#%v", p, loop)
	if player, ok := rm.musicCache[cacheKey]; ok {
		return player, nil
	}
	stream, err := rm.decode(p)
	if err != nil {
		return nil, err
	}
	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}
	rm.musicCache[cacheKey] = player
	return player, nil
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decode 按扩展名解码 wav/mp3/ogg
func (rm *ResourceManager) decode(p string) (decodedStream, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", p)
	}
	data, err := embedded.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(rm.audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", p, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(rm.audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(rm.audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}
