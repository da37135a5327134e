package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RoomScene 一个房间（普通房间或 Boss 房间）
// 每个 RoomScene 持有自己的 World，离开房间时整个 World 被丢弃
type RoomScene struct {
	ctx    *Context
	layout config.RoomLayout
	world  *world.World
}

// NewRoomScene 按布局创建房间并切换背景音乐
func NewRoomScene(ctx *Context, layout config.RoomLayout) (*RoomScene, error) {
	w, err := world.New(layout, world.Deps{
		Stats: ctx.Stats,
		Audio: ctx.Audio,
		Host:  ctx.Host,
		Rand:  ctx.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create room scene: %w", err)
	}
	for _, v := range w.Snapshot().Entities {
		ctx.sprite(v.Sprite)
	}
	ctx.audio().Play(progress.MusicKey(layout), true)
	return &RoomScene{ctx: ctx, layout: layout, world: w}, nil
}

// World 房间模拟
func (s *RoomScene) World() *world.World {
	return s.world
}

// Layout 房间布局
func (s *RoomScene) Layout() config.RoomLayout {
	return s.layout
}

func (s *RoomScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Host.TransitionTo(types.ScreenMenu)
		return
	}
	pollKeys(s.world)
	s.world.Advance(toDuration(deltaTime))
}

// TogglePause 暂停或继续
func (s *RoomScene) TogglePause() {
	s.world.SetPaused(!s.world.Paused())
}

// Leave 离开房间
func (s *RoomScene) Leave() {
	snap := s.world.Snapshot()
	log.Printf("[RoomScene] 离开房间 (tick %d, 结果 %s)", snap.Tick, snap.Outcome)
}

func (s *RoomScene) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, s.world.Snapshot(), s.ctx.sprite)
}
