//go:build mobile

// Package mobile 是 ebitenmobile 绑定入口
//
// 构建前先把 data/ 和 assets/ 复制到本目录：
//
//	cp -r ../data ../assets .
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.batata -o build/batata.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/batata/pkg/app"
	"github.com/decker502/batata/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)
	embedded.MountAssets(assetsFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true, Boss: app.NoBoss, Seed: 1})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	mobile.SetGame(gameApp)
}

// Dummy 确保包被 ebitenmobile 识别
func Dummy() {}
