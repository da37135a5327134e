package scenes

import (
	"image/color"

	"github.com/decker502/batata/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var gameOverBackground = color.RGBA{R: 60, G: 0, B: 0, A: 255}

// GameOverScene 玩家死亡后的屏幕
type GameOverScene struct {
	ctx *Context
}

// NewGameOverScene 停止房间音乐并播放一次失败音乐
func NewGameOverScene(ctx *Context) *GameOverScene {
	ctx.audio().Stop()
	ctx.audio().Play("game_over", false)
	return &GameOverScene{ctx: ctx}
}

func (s *GameOverScene) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.Continue()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.ctx.Host.TransitionTo(types.ScreenMenu)
	}
}

// Continue 从存档所在世界重新开始
func (s *GameOverScene) Continue() {
	s.ctx.Host.TransitionTo(types.ScreenGame)
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	drawTextScreen(screen, gameOverBackground, "GAME OVER", "", "[Enter] Continuar", "[Esc] Voltar ao menu")
}
