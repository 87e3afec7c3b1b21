package main

import (
	"flag"
	"log"

	"github.com/decker502/stonekeep/pkg/app"
	"github.com/decker502/stonekeep/pkg/config"
	"github.com/decker502/stonekeep/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "启用详细日志输出")
	levelFlag      = flag.String("level", "", "直接进入指定关卡（如 Level_1），跳过开始菜单")
	fullscreenFlag = flag.Bool("fullscreen", false, "全屏启动")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Level:      *levelFlag,
		Fullscreen: *fullscreenFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Stonekeep")
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&closingGame{App: gameApp}); err != nil {
		log.Fatal(err)
	}
}

// closingGame 窗口关闭时先保存进度再退出
type closingGame struct {
	*app.App
}

func (g *closingGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Shutdown()
		return ebiten.Termination
	}
	return g.App.Update()
}
