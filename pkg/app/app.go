// Package app 组装游戏应用：加载配置、打开存档、创建场景管理器
//
// 桌面端 main.go 调用 NewApp()，终端版本见 pkg/tty。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/game"
	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/scenes"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "batata"

// NoBoss Config.Boss 的默认值
const NoBoss = progress.NoBoss

// Config 启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// World 直接从该世界的第一个房间开始（1-5），0 表示显示菜单
	World int
	// Boss 直接进入该 Boss 房间（0-6），NoBoss 表示不指定
	Boss int
	// Seed 随机数种子
	Seed uint64
	// AppName 存档目录名，为空时使用 DefaultAppName
	AppName string
}

func (c Config) launch() progress.Launch {
	return progress.Launch{World: c.World, Boss: c.Boss}
}

// Validate 检查启动参数
func (c Config) Validate() error {
	return c.launch().Validate()
}

// App 实现 ebiten.Game
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	res, err := config.LoadGameData()
	if err != nil {
		return nil, err
	}

	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	store := progress.OpenStore(appName)
	settings := game.NewSettingsManager(store)

	resourceManager := game.NewResourceManager(audio.NewContext(48000))
	audioManager := game.NewAudioManager(resourceManager, settings, res.Audio)
	progression := progress.NewProgression(res.Layouts, progress.NewSaveManager(store))

	sceneManager := game.NewSceneManager()
	router := scenes.NewRouter(&scenes.Context{
		Resources:   resourceManager,
		Audio:       audioManager,
		Host:        sceneManager,
		Progression: progression,
		Stats:       res.Stats,
		Rand:        utils.NewSeededRandom(cfg.Seed),
	})
	sceneManager.SetSceneFactory(router.Scene)

	first, err := startScene(cfg, router, progression)
	if err != nil {
		return nil, err
	}
	sceneManager.SwitchTo(first)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return &App{sceneManager: sceneManager, settings: settings, verbose: cfg.Verbose}, nil
}

// startScene 按启动参数选择第一个场景
func startScene(cfg Config, router *scenes.Router, progression *progress.Progression) (game.Scene, error) {
	_, ok, err := progression.Begin(cfg.launch())
	if err != nil {
		return nil, err
	}
	if !ok {
		return router.Scene(types.ScreenMenu), nil
	}
	scene := router.Scene(types.ScreenRoom)
	if scene == nil {
		return nil, fmt.Errorf("failed to create start room")
	}
	return scene, nil
}

// Update 每个 tick 调用一次（TPS = config.TicksPerSecond）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.GetSettings().Fullscreen = fullscreen
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}
	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑色填充两侧并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸与竞技场一致
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
