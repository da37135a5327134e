package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个屏幕（菜单、房间、游戏结束……）
// 同一时间只有一个场景接收 Update 和 Draw
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上次调用的秒数
	Update(deltaTime float64)
	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}

// Leaver 可选接口：场景被替换前调用 Leave 释放音乐等资源
type Leaver interface {
	Leave()
}
