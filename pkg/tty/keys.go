package tty

import (
	"sort"
	"time"

	"github.com/decker502/batata/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// 终端只报告按下（和自动重复），不报告松开。
// 按键在最后一次按下后保持一段时间，期间没有重复就视为松开。
// 第一次按下要等过系统的重复延迟，之后的重复间隔短得多。
const (
	firstHoldWindow  = 550 * time.Millisecond
	repeatHoldWindow = 120 * time.Millisecond
)

// gameKey 方向键移动，AWSD 射击
func gameKey(ev *tcell.EventKey) (types.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return types.KeyLeft, true
	case tcell.KeyRight:
		return types.KeyRight, true
	case tcell.KeyUp:
		return types.KeyUp, true
	case tcell.KeyDown:
		return types.KeyDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return types.KeyShootLeft, true
		case 'd', 'D':
			return types.KeyShootRight, true
		case 'w', 'W':
			return types.KeyShootUp, true
		case 's', 'S':
			return types.KeyShootDown, true
		}
	}
	return 0, false
}

// keyHold 根据按下事件推算按键的保持状态
type keyHold struct {
	deadlines map[types.Key]time.Duration
}

func newKeyHold() *keyHold {
	return &keyHold{deadlines: make(map[types.Key]time.Duration)}
}

// Press 记录一次按下，返回是否是新按下的键
func (h *keyHold) Press(k types.Key, now time.Duration) bool {
	_, held := h.deadlines[k]
	if held {
		h.deadlines[k] = now + repeatHoldWindow
		return false
	}
	h.deadlines[k] = now + firstHoldWindow
	return true
}

// Expired 移除并返回到期的键，按键值排序
func (h *keyHold) Expired(now time.Duration) []types.Key {
	var out []types.Key
	for k, deadline := range h.deadlines {
		if now >= deadline {
			out = append(out, k)
			delete(h.deadlines, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ReleaseAll 移除并返回所有保持中的键
func (h *keyHold) ReleaseAll() []types.Key {
	return h.Expired(time.Duration(1<<63 - 1))
}

// Held 键是否保持中
func (h *keyHold) Held(k types.Key) bool {
	_, ok := h.deadlines[k]
	return ok
}
