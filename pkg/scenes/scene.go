// Package scenes 实现各个屏幕：菜单、房间、隐藏房间、游戏结束与胜利
package scenes

import (
	"math"
	"time"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/game"
	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/utils"
	"github.com/decker502/batata/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 与 game.Scene 相同
type Scene = game.Scene

// Context 所有场景共享的依赖
type Context struct {
	Resources   *game.ResourceManager // 为 nil 时全部使用纯色矩形
	Audio       systems.AudioPlayer
	Host        world.Host
	Progression *progress.Progression
	Stats       *config.ActorStatsConfig
	Rand        utils.RandomSource
}

// sprite 查找精灵图片
func (c *Context) sprite(key string) *ebiten.Image {
	if c.Resources == nil {
		return nil
	}
	return c.Resources.Lookup(key)
}

func (c *Context) audio() systems.AudioPlayer {
	if c.Audio == nil {
		return systems.NopAudio{}
	}
	return c.Audio
}

// toDuration 把秒转换为 time.Duration
func toDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
