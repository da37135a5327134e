package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxTypedRunes = 32

var menuBackground = color.RGBA{R: 10, G: 10, B: 10, A: 255}

// MenuScene 主菜单
// Enter 开始游戏，F1 显示操作说明；任意输入的文字进入指令栏，输入隐藏指令进入隐藏 Boss
type MenuScene struct {
	ctx   *Context
	typed []rune
}

// NewMenuScene 创建主菜单并播放菜单音乐
func NewMenuScene(ctx *Context) *MenuScene {
	ctx.audio().Play("menu", true)
	return &MenuScene{ctx: ctx}
}

func (m *MenuScene) Update(deltaTime float64) {
	for _, r := range ebiten.AppendInputChars(nil) {
		m.TypeRune(r)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		m.Backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		m.Start()
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		m.ctx.Host.ShowModal(progress.InstructionsMessage)
	}
}

// Typed 指令栏中的文字
func (m *MenuScene) Typed() string {
	return string(m.typed)
}

// TypeRune 向指令栏输入一个字符
func (m *MenuScene) TypeRune(r rune) {
	m.typed = append(m.typed, r)
	if len(m.typed) > maxTypedRunes {
		m.typed = m.typed[len(m.typed)-maxTypedRunes:]
	}
	m.checkCode()
}

// Backspace 删除指令栏最后一个字符
func (m *MenuScene) Backspace() {
	if len(m.typed) > 0 {
		m.typed = m.typed[:len(m.typed)-1]
		m.checkCode()
	}
}

// Start 开始游戏
func (m *MenuScene) Start() {
	log.Printf("[MenuScene] 开始游戏")
	m.ctx.Host.TransitionTo(types.ScreenGame)
}

func (m *MenuScene) checkCode() {
	if !progress.IsSecretCode(string(m.typed)) {
		return
	}
	log.Printf("[MenuScene] 识别到隐藏指令")
	m.typed = nil
	m.ctx.Host.ShowModal(progress.SecretMessage)
	m.ctx.Host.TransitionTo(types.ScreenSecretBoss)
}

func (m *MenuScene) Draw(screen *ebiten.Image) {
	drawTextScreen(screen, menuBackground,
		"BATATA",
		"",
		"[Enter] Jogar",
		"[F1] Instrucoes",
		"",
		"> "+string(m.typed),
	)
}
