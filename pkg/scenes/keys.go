package scenes

import (
	"github.com/decker502/batata/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings 键盘到游戏按键的映射：方向键移动，AWSD 射击
var keyBindings = []struct {
	physical ebiten.Key
	key      types.Key
}{
	{ebiten.KeyArrowLeft, types.KeyLeft},
	{ebiten.KeyArrowRight, types.KeyRight},
	{ebiten.KeyArrowUp, types.KeyUp},
	{ebiten.KeyArrowDown, types.KeyDown},
	{ebiten.KeyA, types.KeyShootLeft},
	{ebiten.KeyD, types.KeyShootRight},
	{ebiten.KeyW, types.KeyShootUp},
	{ebiten.KeyS, types.KeyShootDown},
}

type keySink interface {
	KeyDown(types.Key)
	KeyUp(types.Key)
}

// pollKeys 把本帧的按下与松开事件转发给 sink
func pollKeys(sink keySink) {
	for _, b := range keyBindings {
		switch {
		case inpututil.IsKeyJustPressed(b.physical):
			sink.KeyDown(b.key)
		case inpututil.IsKeyJustReleased(b.physical):
			sink.KeyUp(b.key)
		}
	}
}

// digitKeys 数字键 1-5
var digitKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}
