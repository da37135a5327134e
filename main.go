package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/batata/pkg/app"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细日志")
	world   = flag.Int("world", 0, "直接从世界 1-5 的第一个房间开始")
	boss    = flag.Int("boss", app.NoBoss, "直接进入 Boss 房间 0-6（0 为隐藏 Boss）")
	seed    = flag.Uint64("seed", 1, "随机数种子")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)
	// 图片和音频从工作目录的 assets/ 读取，缺失时使用纯色图形并静音
	embedded.MountAssets(os.DirFS("."))

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		World:   *world,
		Boss:    *boss,
		Seed:    *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Batata")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
