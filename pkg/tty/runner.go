package tty

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
	"github.com/decker502/batata/pkg/world"
	"github.com/gdamore/tcell/v2"
)

const maxTypedRunes = 32

// Options 终端版本的依赖
type Options struct {
	Stats       *config.ActorStatsConfig
	Progression *progress.Progression
	Audio       systems.AudioPlayer // 为 nil 时静音
	Rand        utils.RandomSource  // 为 nil 时使用固定种子
}

// Runner 终端版本的屏幕宿主：在字符网格上运行菜单、房间和结算画面
//
// 实现 world.Host，屏幕切换在当前帧结束后生效；弹窗打开时暂停一切，
// Enter 或空格关闭。
type Runner struct {
	opts     Options
	renderer *Renderer

	screen  types.Screen
	pending types.Screen
	modal   string

	world *world.World
	keys  *keyHold
	typed []rune
	now   time.Duration
	quit  bool
}

var _ world.Host = (*Runner)(nil)

// NewRunner 创建终端宿主，初始屏幕为菜单
func NewRunner(screen tcell.Screen, opts Options) (*Runner, error) {
	if opts.Stats == nil || opts.Progression == nil {
		return nil, fmt.Errorf("failed to create runner: stats and progression are required")
	}
	if opts.Audio == nil {
		opts.Audio = systems.NopAudio{}
	}
	if opts.Rand == nil {
		opts.Rand = utils.NewSeededRandom(1)
	}
	r := &Runner{opts: opts, renderer: NewRenderer(screen), keys: newKeyHold()}
	r.open(types.ScreenMenu)
	return r, nil
}

func (r *Runner) TransitionTo(screen types.Screen) {
	r.pending = screen
}

func (r *Runner) ShowModal(message string) {
	log.Printf("[Runner] 弹窗: %s", message)
	r.modal = message
}

// Screen 当前屏幕
func (r *Runner) Screen() types.Screen { return r.screen }

// Modal 当前弹窗内容，没有弹窗时为空
func (r *Runner) Modal() string { return r.modal }

// World 当前房间，不在房间中时为 nil
func (r *Runner) World() *world.World { return r.world }

// Quit 是否已请求退出
func (r *Runner) Quit() bool { return r.quit }

// Enter 进入推进规则给出的去向（命令行直接指定世界或 Boss 时使用）
func (r *Runner) Enter(dest progress.Destination) {
	r.enter(dest, nil)
}

// HandleKey 处理一次按键事件
func (r *Runner) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		r.quit = true
		return
	}
	if r.modal != "" {
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			r.modal = ""
		}
		return
	}
	switch r.screen {
	case types.ScreenMenu:
		r.menuKey(ev)
	case types.ScreenRoom:
		r.roomKey(ev)
	case types.ScreenGameOver:
		switch ev.Key() {
		case tcell.KeyEnter:
			r.TransitionTo(types.ScreenGame)
		case tcell.KeyEscape:
			r.TransitionTo(types.ScreenMenu)
		}
	case types.ScreenVictory:
		if ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyEscape {
			r.TransitionTo(types.ScreenMenu)
		}
	case types.ScreenSecretRoom:
		r.secretKey(ev)
	}
}

func (r *Runner) menuKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		r.TransitionTo(types.ScreenGame)
	case tcell.KeyEscape:
		r.quit = true
	case tcell.KeyF1:
		r.ShowModal(progress.InstructionsMessage)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(r.typed) > 0 {
			r.typed = r.typed[:len(r.typed)-1]
		}
	case tcell.KeyRune:
		if len(r.typed) >= maxTypedRunes {
			return
		}
		r.typed = append(r.typed, ev.Rune())
		if progress.IsSecretCode(string(r.typed)) {
			r.typed = nil
			r.ShowModal(progress.SecretMessage)
			r.TransitionTo(types.ScreenSecretBoss)
		}
	}
}

func (r *Runner) roomKey(ev *tcell.EventKey) {
	if k, ok := gameKey(ev); ok {
		if r.keys.Press(k, r.now) {
			r.world.KeyDown(k)
		}
		return
	}
	switch {
	case ev.Key() == tcell.KeyEscape:
		r.TransitionTo(types.ScreenMenu)
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
		r.world.SetPaused(!r.world.Paused())
	}
}

func (r *Runner) secretKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		r.TransitionTo(types.ScreenMenu)
		return
	}
	if ev.Key() != tcell.KeyRune || ev.Rune() < '1' || ev.Rune() > '0'+progress.WorldCount {
		return
	}
	dest, err := r.opts.Progression.ChooseWorld(int(ev.Rune() - '0'))
	if err != nil {
		log.Printf("[Runner] 无法选择世界: %v", err)
		return
	}
	if dest.Notice != "" {
		r.ShowModal(dest.Notice)
	}
	r.TransitionTo(types.ScreenRoom)
}

// Step 推进 elapsed 的时间：释放到期的按键，推进房间，应用屏幕切换
func (r *Runner) Step(elapsed time.Duration) {
	r.now += elapsed
	if r.world != nil && r.modal == "" {
		for _, k := range r.keys.Expired(r.now) {
			r.world.KeyUp(k)
		}
		r.world.Advance(elapsed)
	}
	if r.pending != "" && r.modal == "" {
		next := r.pending
		r.pending = ""
		r.open(next)
	}
}

// Draw 绘制当前屏幕
func (r *Runner) Draw() {
	switch r.screen {
	case types.ScreenRoom:
		r.renderer.Draw(r.world.Snapshot(), r.modal)
	case types.ScreenMenu:
		r.renderer.DrawText(r.modal, "BATATA", "", "[Enter] Jogar", "[F1] Instrucoes", "[Esc] Sair", "", "> "+string(r.typed))
	case types.ScreenGameOver:
		r.renderer.DrawText(r.modal, "GAME OVER", "", "[Enter] Continuar", "[Esc] Voltar ao menu")
	case types.ScreenVictory:
		r.renderer.DrawText(r.modal, "VITORIA!", "", "[Enter] Voltar ao menu")
	case types.ScreenSecretRoom:
		lines := []string{"SALA SECRETA", ""}
		for i := 1; i <= progress.WorldCount; i++ {
			lines = append(lines, fmt.Sprintf("[%d] Mundo %d", i, i))
		}
		r.renderer.DrawText(r.modal, append(lines, "", "[Esc] Voltar ao menu")...)
	default:
		r.renderer.DrawText(r.modal)
	}
}

// open 切换到 screen，ScreenGame 等路由屏幕会解析为具体房间
func (r *Runner) open(screen types.Screen) {
	p := r.opts.Progression
	switch screen {
	case types.ScreenGame:
		r.enter(p.Start())
		return
	case types.ScreenNextRoom:
		r.enter(p.Next())
		return
	case types.ScreenSecretBoss:
		r.enter(p.EnterSecret())
		return
	case types.ScreenRoom:
		r.room(p.Current())
		return
	}

	r.leaveRoom()
	audio := r.opts.Audio
	switch screen {
	case types.ScreenMenu:
		audio.Play("menu", true)
	case types.ScreenGameOver:
		audio.Stop()
		audio.Play("game_over", false)
	case types.ScreenVictory:
		if notice := p.Finish(); notice != "" {
			r.ShowModal(notice)
		}
		audio.Play("victory", true)
	case types.ScreenSecretRoom:
		audio.Stop()
		audio.Play("secret", false)
	default:
		log.Printf("[Runner] 未知屏幕: %s", screen)
		return
	}
	log.Printf("[Runner] 切换到 %s", screen)
	r.screen = screen
}

func (r *Runner) enter(dest progress.Destination, err error) {
	if err != nil {
		log.Printf("[Runner] 错误: %v", err)
		return
	}
	if dest.Notice != "" {
		r.ShowModal(dest.Notice)
	}
	if dest.Screen != "" {
		r.open(dest.Screen)
		return
	}
	r.room(dest.Layout)
}

func (r *Runner) room(layout config.RoomLayout) {
	w, err := world.New(layout, world.Deps{
		Stats: r.opts.Stats,
		Audio: r.opts.Audio,
		Host:  r,
		Rand:  r.opts.Rand,
	})
	if err != nil {
		log.Printf("[Runner] 错误: %v", err)
		return
	}
	r.leaveRoom()
	r.world = w
	r.screen = types.ScreenRoom
	r.opts.Audio.Play(progress.MusicKey(layout), true)
	log.Printf("[Runner] 进入房间 (房间=%d, boss=%v)", layout.Room, layout.IsBoss)
}

func (r *Runner) leaveRoom() {
	if r.world == nil {
		return
	}
	for _, k := range r.keys.ReleaseAll() {
		r.world.KeyUp(k)
	}
	r.world = nil
}

// Run 事件循环：按键来自 PollEvent，模拟以固定间隔推进，直到退出或 ctx 结束
func Run(ctx context.Context, screen tcell.Screen, r *Runner) {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(screen.PollEvent, events, done)

	ticker := time.NewTicker(config.SimTickInterval)
	defer ticker.Stop()
	last := time.Now()
	r.Draw()
	for !r.quit {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				r.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			r.Step(now.Sub(last))
			last = now
			r.Draw()
		}
	}
}

// forwardEvents 把 poll 得到的事件送入 events，poll 返回 nil 或 done 关闭后退出
func forwardEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
