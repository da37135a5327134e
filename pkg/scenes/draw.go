package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 20, B: 28, A: 255}
	heartColor      = color.RGBA{R: 220, G: 40, B: 60, A: 255}
	heartLostColor  = color.RGBA{R: 70, G: 40, B: 45, A: 255}
	bossBarBack     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	bossBarFill     = color.RGBA{R: 200, G: 60, B: 200, A: 255}
	pauseOverlay    = color.RGBA{A: 140}
)

// viewColor 没有精灵图片时的纯色
func viewColor(kind world.ViewKind) color.RGBA {
	switch kind {
	case world.ViewWall:
		return color.RGBA{R: 90, G: 80, B: 70, A: 255}
	case world.ViewDoor:
		return color.RGBA{R: 140, G: 90, B: 40, A: 255}
	case world.ViewProjectile:
		return color.RGBA{R: 255, G: 150, B: 30, A: 255}
	case world.ViewEnemy:
		return color.RGBA{R: 90, G: 200, B: 90, A: 255}
	case world.ViewBoss:
		return color.RGBA{R: 170, G: 40, B: 170, A: 255}
	case world.ViewPlayer:
		return color.RGBA{R: 230, G: 200, B: 120, A: 255}
	case world.ViewPof:
		return color.RGBA{R: 220, G: 220, B: 220, A: 180}
	case world.ViewAlert:
		return color.RGBA{R: 255, G: 0, B: 0, A: 110}
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}

// drawSnapshot 按快照中的顺序绘制实体
func drawSnapshot(screen *ebiten.Image, snap world.Snapshot, lookup func(string) *ebiten.Image) {
	screen.Fill(backgroundColor)
	for _, v := range snap.Entities {
		if !v.Visible {
			continue
		}
		if img := lookup(v.Sprite); img != nil {
			b := img.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(v.Rect.W/float64(b.Dx()), v.Rect.H/float64(b.Dy()))
			op.GeoM.Translate(v.Rect.X, v.Rect.Y)
			screen.DrawImage(img, op)
			continue
		}
		vector.DrawFilledRect(screen, float32(v.Rect.X), float32(v.Rect.Y), float32(v.Rect.W), float32(v.Rect.H), viewColor(v.Kind), false)
	}
	drawHUD(screen, snap.HUD)
	if snap.Paused {
		vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, pauseOverlay, false)
		ebitenutil.DebugPrintAt(screen, "PAUSADO  [P]", config.GameWindowWidth/2-40, config.GameWindowHeight/2)
	}
}

const heartSize = 16

func drawHUD(screen *ebiten.Image, h world.HUD) {
	for i := 0; i < h.PlayerMaxHealth; i++ {
		c := heartColor
		if i >= h.PlayerHealth {
			c = heartLostColor
		}
		vector.DrawFilledRect(screen, float32(10+i*(heartSize+4)), 10, heartSize, heartSize, c, false)
	}
	for i, line := range hudLines(h) {
		ebitenutil.DebugPrintAt(screen, line, 10, 32+i*16)
	}
	if h.HasBoss && h.BossMaxHealth > 0 {
		const barW, barH = 400.0, 12.0
		x := float32(config.GameWindowWidth-barW) / 2
		ratio := float32(h.BossHealth) / float32(h.BossMaxHealth)
		vector.DrawFilledRect(screen, x, 10, barW, barH, bossBarBack, false)
		vector.DrawFilledRect(screen, x, 10, barW*ratio, barH, bossBarFill, false)
		ebitenutil.DebugPrintAt(screen, h.BossName, int(x), 26)
	}
}

// hudLines HUD 中的文字行
func hudLines(h world.HUD) []string {
	var lines []string
	switch {
	case h.HasBoss:
		lines = append(lines, fmt.Sprintf("Boss %d", h.World))
	default:
		lines = append(lines, fmt.Sprintf("Mundo %d - Sala %d", h.World, h.Room%config.RoomsPerWorld+1))
	}
	if !h.HasBoss {
		if h.DoorOpen {
			lines = append(lines, "Porta aberta!")
		} else {
			lines = append(lines, fmt.Sprintf("Inimigos: %d", h.EnemiesRemaining))
		}
	}
	return lines
}

// drawTextScreen 纯文字屏幕
func drawTextScreen(screen *ebiten.Image, bg color.Color, lines ...string) {
	screen.Fill(bg)
	y := config.GameWindowHeight/2 - len(lines)*10
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.GameWindowWidth/2-len(line)*3, y)
		y += 20
	}
}
