package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/batata/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var victoryBackground = color.RGBA{R: 10, G: 50, B: 20, A: 255}

// VictoryScene 击败最终 Boss 后的屏幕，进度重置为世界 1
type VictoryScene struct {
	ctx *Context
}

// NewVictoryScene 重置进度并播放胜利音乐
func NewVictoryScene(ctx *Context) *VictoryScene {
	if notice := ctx.Progression.Finish(); notice != "" {
		ctx.Host.ShowModal(notice)
	}
	log.Printf("[VictoryScene] 通关")
	ctx.audio().Play("victory", true)
	return &VictoryScene{ctx: ctx}
}

func (s *VictoryScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Host.TransitionTo(types.ScreenMenu)
	}
}

func (s *VictoryScene) Draw(screen *ebiten.Image) {
	drawTextScreen(screen, victoryBackground, "VITORIA!", "", "[Enter] Voltar ao menu")
}
