package game

import (
	"image/color"
	"log"

	"github.com/decker502/batata/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneFactory 按屏幕标识创建场景，返回 nil 表示无法创建
type SceneFactory func(screen types.Screen) Scene

// SceneManager 管理当前场景，实现 ScreenHost
//
// TransitionTo 只记录目标屏幕，在当前 Update 结束后才真正切换，
// 因此场景可以在自己的 Update 中安全地请求切换。
// ShowModal 显示一个需要按 Enter 关闭的提示框，提示框打开期间场景暂停，
// 待切换的屏幕在提示框关闭后生效。
type SceneManager struct {
	currentScene Scene
	factory      SceneFactory
	pending      types.Screen
	modal        string
}

// NewSceneManager 创建场景管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.factory = factory
}

// SwitchTo 立即切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	if l, ok := sm.currentScene.(Leaver); ok && sm.currentScene != scene {
		l.Leave()
	}
	sm.currentScene = scene
}

// GetCurrentScene 当前场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// TransitionTo 请求切换屏幕
func (sm *SceneManager) TransitionTo(screen types.Screen) {
	log.Printf("[SceneManager] 请求切换到: %s", screen)
	sm.pending = screen
}

// ShowModal 显示提示框
func (sm *SceneManager) ShowModal(message string) {
	log.Printf("[SceneManager] 提示: %s", message)
	sm.modal = message
}

// Modal 当前提示框内容，没有时为空
func (sm *SceneManager) Modal() string {
	return sm.modal
}

// DismissModal 关闭提示框
func (sm *SceneManager) DismissModal() {
	sm.modal = ""
}

// Pending 尚未生效的切换目标
func (sm *SceneManager) Pending() types.Screen {
	return sm.pending
}

// Update 更新当前场景，然后处理待切换的屏幕
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.modal != "" {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			sm.DismissModal()
		}
	} else if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	sm.applyPending()
}

func (sm *SceneManager) applyPending() {
	if sm.pending == "" || sm.modal != "" {
		return
	}
	screen := sm.pending
	sm.pending = ""
	if sm.factory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}
	next := sm.factory(screen)
	if next == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", screen)
		return
	}
	sm.SwitchTo(next)
	log.Printf("[SceneManager] 已切换到: %s", screen)
}

var modalBackdrop = color.RGBA{A: 200}

// Draw 绘制当前场景和提示框
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
	if sm.modal == "" {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, float32(w)/4, float32(h)/2-40, float32(w)/2, 80, modalBackdrop, false)
	ebitenutil.DebugPrintAt(screen, sm.modal, w/4+16, h/2-20)
	ebitenutil.DebugPrintAt(screen, "[Enter]", w/4+16, h/2+8)
}
