package scenes

import (
	"log"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/game"
	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/types"
)

// Router 把屏幕标识解析为场景，用作 game.SceneFactory
type Router struct {
	ctx *Context
}

// NewRouter 创建路由
func NewRouter(ctx *Context) *Router {
	return &Router{ctx: ctx}
}

// Scene 创建 screen 对应的场景，失败时返回 nil
func (r *Router) Scene(screen types.Screen) game.Scene {
	p := r.ctx.Progression
	switch screen {
	case types.ScreenMenu:
		return NewMenuScene(r.ctx)
	case types.ScreenGame:
		return r.enter(p.Start())
	case types.ScreenRoom:
		return r.room(p.Current())
	case types.ScreenNextRoom:
		return r.enter(p.Next())
	case types.ScreenSecretBoss:
		return r.enter(p.EnterSecret())
	case types.ScreenGameOver:
		return NewGameOverScene(r.ctx)
	case types.ScreenVictory:
		return NewVictoryScene(r.ctx)
	case types.ScreenSecretRoom:
		return NewSecretScene(r.ctx)
	}
	log.Printf("[Router] 未知屏幕: %s", screen)
	return nil
}

func (r *Router) enter(dest progress.Destination, err error) game.Scene {
	if err != nil {
		log.Printf("[Router] 错误: %v", err)
		return nil
	}
	if dest.Notice != "" {
		r.ctx.Host.ShowModal(dest.Notice)
	}
	if dest.Screen != "" {
		return r.Scene(dest.Screen)
	}
	return r.room(dest.Layout)
}

func (r *Router) room(layout config.RoomLayout) game.Scene {
	scene, err := NewRoomScene(r.ctx, layout)
	if err != nil {
		log.Printf("[Router] 错误: %v", err)
		return nil
	}
	return scene
}
