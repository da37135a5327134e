package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var secretBackground = color.RGBA{R: 40, G: 20, B: 10, A: 255}

// SecretScene 隐藏房间：按 1-5 选择从哪个世界开始
type SecretScene struct {
	ctx *Context
}

// NewSecretScene 创建隐藏房间
func NewSecretScene(ctx *Context) *SecretScene {
	ctx.audio().Stop()
	ctx.audio().Play("secret", false)
	return &SecretScene{ctx: ctx}
}

func (s *SecretScene) Update(deltaTime float64) {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.Choose(i + 1)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Host.TransitionTo(types.ScreenMenu)
	}
}

// Choose 保存选择的世界并进入该世界的第一个房间
func (s *SecretScene) Choose(world int) {
	dest, err := s.ctx.Progression.ChooseWorld(world)
	if err != nil {
		log.Printf("[SecretScene] 无法选择世界 %d: %v", world, err)
		return
	}
	if dest.Notice != "" {
		s.ctx.Host.ShowModal(dest.Notice)
	}
	s.ctx.Host.TransitionTo(types.ScreenRoom)
}

func (s *SecretScene) Draw(screen *ebiten.Image) {
	lines := []string{"SALA SECRETA", ""}
	for i := 1; i <= progress.WorldCount; i++ {
		lines = append(lines, fmt.Sprintf("[%d] Mundo %d", i, i))
	}
	lines = append(lines, "", "[Esc] Voltar ao menu")
	drawTextScreen(screen, secretBackground, lines...)
}
