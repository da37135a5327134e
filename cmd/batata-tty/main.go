// batata-tty 在终端中运行游戏
//
// 用法（在仓库根目录）：
//
//	go run ./cmd/batata-tty
//	go run ./cmd/batata-tty -world 3
//	go run ./cmd/batata-tty -boss 6 -mute
//
// 终端不报告按键松开，按住方向键依赖系统的自动重复。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/embedded"
	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/tty"
	"github.com/decker502/batata/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

var (
	dataDir = flag.String("data", ".", "包含 data/ 目录的路径")
	world   = flag.Int("world", 0, "直接从世界 1-5 的第一个房间开始")
	boss    = flag.Int("boss", progress.NoBoss, "直接进入 Boss 房间 0-6（0 为隐藏 Boss）")
	seed    = flag.Uint64("seed", 1, "随机数种子")
	mute    = flag.Bool("mute", false, "不播放声音")
	logFile = flag.String("log", "", "日志文件（终端被游戏占用，默认不输出日志）")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "batata-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *logFile == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.Create(*logFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	launch := progress.Launch{World: *world, Boss: *boss}
	if err := launch.Validate(); err != nil {
		return err
	}

	embedded.Init(os.DirFS(*dataDir))
	data, err := config.LoadGameData()
	if err != nil {
		return err
	}
	progression := progress.NewProgression(data.Layouts, progress.NewSaveManager(progress.OpenStore("batata")))

	var audio systems.AudioPlayer = systems.NopAudio{}
	if !*mute {
		tones := tty.NewToneAudio()
		if err := tones.Init(); err != nil {
			log.Printf("[Main] 无法打开声卡，静音运行: %v", err)
		} else {
			defer tones.Close()
			audio = tones
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	runner, err := tty.NewRunner(screen, tty.Options{
		Stats:       data.Stats,
		Progression: progression,
		Audio:       audio,
		Rand:        utils.NewSeededRandom(*seed),
	})
	if err != nil {
		return err
	}
	dest, ok, err := progression.Begin(launch)
	if err != nil {
		return err
	}
	if ok {
		runner.Enter(dest)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	tty.Run(ctx, screen, runner)
	return nil
}
