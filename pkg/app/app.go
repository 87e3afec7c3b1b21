// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：打开存储、创建设置和进度管理器、
// 组装场景管理器和加载画面，并实现 ebiten.Game 接口。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/decker502/stonekeep/pkg/config"
	"github.com/decker502/stonekeep/pkg/game"
	"github.com/decker502/stonekeep/pkg/input"
	"github.com/decker502/stonekeep/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "stonekeep"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定直接进入的关卡（如 "Level_1"），为空则显示开始菜单
	Level string
	// Fullscreen 启动时全屏（覆盖设置中的值）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	loading      *game.LoadingScreen
	settings     *game.SettingsManager
	progress     *game.ProgressManager
	keyboard     *input.Keyboard
	verbose      bool
	quit         bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前应先调用 embedded.Init() 初始化嵌入资源，
// 未初始化时关卡文件从磁盘读取。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 存储不可用时进入降级模式，设置和进度只保存在内存中
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (progress will not be saved)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, err
	}
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}
	progressManager := game.NewProgressManager(gdataManager)

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     settingsManager,
		progress:     progressManager,
		keyboard:     input.NewKeyboard(),
		verbose:      cfg.Verbose,
	}
	a.loading = game.NewLoadingScreen(a.sceneManager)

	deps := scenes.Deps{
		Loader:   a.loading,
		Input:    a.keyboard,
		Progress: progressManager,
		Settings: settingsManager.GetSettings(),
		OnQuit:   func() { a.quit = true },
	}
	a.sceneManager.SetSceneFactory(func(sceneID string) game.Scene {
		return createScene(sceneID, deps)
	})
	a.loading.OnLoaded(func(sceneID string) {
		log.Printf("[App] Scene loaded: %s", sceneID)
	})

	ebiten.SetFullscreen(settingsManager.GetSettings().Fullscreen)

	// 指定关卡时跳过菜单
	startScene := config.SceneMenu
	if cfg.Level != "" {
		startScene = cfg.Level
	}
	log.Printf("[App] Starting scene: %s", startScene)
	if !a.sceneManager.LoadScene(startScene) {
		log.Printf("[App] Warning: failed to load %s, falling back to menu", startScene)
		a.sceneManager.LoadScene(config.SceneMenu)
	}

	return a, nil
}

// createScene 场景工厂：菜单或关卡
func createScene(sceneID string, deps scenes.Deps) game.Scene {
	if sceneID == config.SceneMenu {
		menu := scenes.NewMenuScene(config.DefaultLevelID, deps)
		levels, err := config.ListLevels()
		if err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		menu.SetLevels(levels)
		return menu
	}

	levelConfig, err := config.LoadLevel(sceneID)
	if err != nil {
		log.Printf("[App] Failed to load level %s: %v", sceneID, err)
		return nil
	}
	return scenes.NewLevelScene(levelConfig, deps)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	a.loading.Update(deltaTime)

	if a.quit {
		a.Shutdown()
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
// 加载画面盖在当前场景之上
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
	a.loading.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 保存当前场景进度和设置，窗口关闭时调用
func (a *App) Shutdown() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: failed to save progress on exit")
		}
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
