package tty

import (
	"fmt"
	"strings"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/world"
	"github.com/gdamore/tcell/v2"
)

// hudRows 底部抬头显示占用的行数
const hudRows = 2

type glyph struct {
	r     rune
	style tcell.Style
}

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleModal   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleBossBar = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 30, 30))
)

var glyphs = map[world.ViewKind]glyph{
	world.ViewWall:       {'█', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	world.ViewDoor:       {'▒', tcell.StyleDefault.Foreground(tcell.NewRGBColor(139, 90, 43))},
	world.ViewProjectile: {'•', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
	world.ViewEnemy:      {'e', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	world.ViewBoss:       {'B', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	world.ViewPlayer:     {'@', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
	world.ViewPof:        {'*', tcell.StyleDefault.Foreground(tcell.ColorSilver)},
	world.ViewAlert:      {'!', tcell.StyleDefault.Foreground(tcell.ColorRed)},
}

// Renderer 把快照绘制到终端，竞技场按比例缩放到可用的字符网格
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// arena 竞技场占用的列数和行数
func (r *Renderer) arena() (cols, rows int) {
	w, h := r.screen.Size()
	rows = h - hudRows
	if rows < 1 {
		rows = 1
	}
	if w < 1 {
		w = 1
	}
	return w, rows
}

// cellRect 竞技场坐标矩形对应的字符格范围 [x0,x1) x [y0,y1)，至少占一格
func cellRect(rect types.Rect, cols, rows int) (x0, y0, x1, y1 int) {
	sx := float64(cols) / config.ArenaWidth
	sy := float64(rows) / config.ArenaHeight
	x0 = clampInt(int(rect.X*sx), 0, cols-1)
	y0 = clampInt(int(rect.Y*sy), 0, rows-1)
	x1 = clampInt(int((rect.X+rect.W)*sx+0.5), x0+1, cols)
	y1 = clampInt(int((rect.Y+rect.H)*sy+0.5), y0+1, rows)
	return
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw 绘制一帧：实体、抬头显示和可选的弹窗
func (r *Renderer) Draw(snap world.Snapshot, modal string) {
	r.screen.Clear()
	cols, rows := r.arena()
	for _, e := range snap.Entities {
		if !e.Visible {
			continue
		}
		g, ok := glyphs[e.Kind]
		if !ok {
			continue
		}
		if e.Kind == world.ViewDoor && snap.HUD.DoorOpen {
			g.r = '░'
		}
		x0, y0, x1, y1 := cellRect(e.Rect, cols, rows)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				r.screen.SetContent(x, y, g.r, nil, g.style)
			}
		}
	}
	r.drawHUD(snap, rows)
	if snap.Paused {
		r.centered("PAUSADO", rows/2, styleModal)
	}
	if modal != "" {
		r.centered(modal, rows/2+1, styleModal)
	}
	r.screen.Show()
}

func (r *Renderer) drawHUD(snap world.Snapshot, top int) {
	r.text(0, top, statusLine(snap.HUD), styleHUD)
	if !snap.HUD.HasBoss || snap.HUD.BossMaxHealth <= 0 {
		return
	}
	cols, _ := r.arena()
	label := snap.HUD.BossName + " "
	r.text(0, top+1, label, styleHUD)
	width := cols - len([]rune(label))
	filled := width * snap.HUD.BossHealth / snap.HUD.BossMaxHealth
	for i := 0; i < filled; i++ {
		r.screen.SetContent(len([]rune(label))+i, top+1, '▆', nil, styleBossBar)
	}
}

// statusLine 抬头显示的文字行
func statusLine(h world.HUD) string {
	hearts := strings.Repeat("♥", max(h.PlayerHealth, 0)) + strings.Repeat("♡", max(h.PlayerMaxHealth-h.PlayerHealth, 0))
	if h.HasBoss {
		return fmt.Sprintf("%s  Boss %d", hearts, h.World)
	}
	where := fmt.Sprintf("Mundo %d - Sala %d", h.World, h.Room%config.RoomsPerWorld+1)
	status := fmt.Sprintf("Inimigos: %d", h.EnemiesRemaining)
	if h.DoorOpen {
		status = "Porta aberta!"
	}
	return hearts + "  " + where + "  " + status
}

// DrawText 绘制居中的文字画面（菜单、游戏结束等）
func (r *Renderer) DrawText(modal string, lines ...string) {
	r.screen.Clear()
	_, h := r.screen.Size()
	top := (h - len(lines)) / 2
	for i, line := range lines {
		r.centered(line, top+i, styleDefault)
	}
	if modal != "" {
		r.centered(modal, h-2, styleModal)
	}
	r.screen.Show()
}

func (r *Renderer) centered(s string, y int, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	r.text(x, y, s, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
