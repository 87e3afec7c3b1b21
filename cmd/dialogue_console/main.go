// dialogue_console 在终端中无窗口地运行关卡
//
// 关卡逻辑和桌面版完全一致，只是输入来自终端按键、画面换成文本面板。
// 运行时不打开窗口，适合在 SSH 会话里走查对话、目标和场景切换。
// 关卡场景仍然链接 ebiten，所以在 Linux 上编译需要 X11/GL 开发头文件
// （与桌面版相同），只是运行时不需要显示器。
//
// 用法：
//
//	go run ./cmd/dialogue_console --level Level_1
//	go run ./cmd/dialogue_console --level Game_Scene --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/decker502/stonekeep/pkg/config"
	"github.com/decker502/stonekeep/pkg/embedded"
	"github.com/decker502/stonekeep/pkg/game"
	"github.com/decker502/stonekeep/pkg/input"
	"github.com/decker502/stonekeep/pkg/scenes"
)

var (
	levelFlag   = flag.String("level", config.DefaultLevelID, "要运行的关卡ID")
	rootFlag    = flag.String("root", ".", "包含 data/levels 的目录")
	verboseFlag = flag.Bool("verbose", false, "把详细日志写入 dialogue_console.log")
)

func main() {
	flag.Parse()

	// 终端界面占用标准输出，日志只能写文件
	if *verboseFlag {
		f, err := tea.LogToFile("dialogue_console.log", "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*rootFlag))

	keys := input.NewScripted()
	manager := game.NewSceneManager()
	loading := game.NewLoadingScreen(manager)
	deps := scenes.Deps{
		Loader: loading,
		Input:  keys,
	}
	manager.SetSceneFactory(func(sceneID string) game.Scene {
		// 终端里没有菜单，返回菜单的请求忽略
		if sceneID == config.SceneMenu {
			return nil
		}
		levelConfig, err := config.LoadLevel(sceneID)
		if err != nil {
			log.Printf("[Console] Failed to load level %s: %v", sceneID, err)
			return nil
		}
		return scenes.NewLevelScene(levelConfig, deps)
	})

	if !manager.LoadScene(*levelFlag) {
		fmt.Fprintf(os.Stderr, "Failed to load level %q from %s\n", *levelFlag, config.LevelPath(*levelFlag))
		os.Exit(1)
	}

	p := tea.NewProgram(newConsoleModel(manager, loading, keys), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
