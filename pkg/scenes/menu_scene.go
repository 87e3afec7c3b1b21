package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/decker502/stonekeep/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var menuBackground = color.RGBA{20, 24, 36, 255}

// MenuScene 开始菜单
//
//   - Enter: 继续（上次所在的关卡，没有存档时进入第一关）
//   - N:     新游戏（清空进度后进入第一关）
//   - 1-9:   直接进入关卡列表中的第 N 个关卡
//   - Esc:   退出
type MenuScene struct {
	deps       Deps
	startScene string
	levels     []string
	requested  bool
}

// NewMenuScene 创建开始菜单，startScene 为空时使用默认第一关
func NewMenuScene(startScene string, deps Deps) *MenuScene {
	if startScene == "" {
		startScene = config.DefaultLevelID
	}
	return &MenuScene{deps: deps, startScene: startScene}
}

// SetLevels 设置可直接选择的关卡列表，最多前 9 个可用数字键选择
func (m *MenuScene) SetLevels(levels []string) {
	m.levels = levels
}

// Levels 返回可选择的关卡列表
func (m *MenuScene) Levels() []string {
	return m.levels
}

// ContinueScene 按 Enter 时进入的场景
func (m *MenuScene) ContinueScene() string {
	if m.deps.Progress != nil {
		if last := m.deps.Progress.CurrentScene(); last != "" && last != config.SceneMenu {
			return last
		}
	}
	return m.startScene
}

// Update 处理菜单输入
func (m *MenuScene) Update(deltaTime float64) {
	in := m.deps.Input
	if in == nil || m.requested {
		return
	}

	switch {
	case in.KeyEdge("Enter"):
		m.start(m.ContinueScene())
	case in.KeyEdge("N"):
		if m.deps.Progress != nil {
			if err := m.deps.Progress.Reset(); err != nil {
				log.Printf("[MenuScene] 清空进度失败: %v", err)
			}
		}
		m.start(m.startScene)
	case in.KeyEdge("Escape"):
		log.Printf("[MenuScene] 退出游戏")
		if m.deps.OnQuit != nil {
			m.deps.OnQuit()
		}
	default:
		for i, level := range m.levels[:min(len(m.levels), 9)] {
			if in.KeyEdge(strconv.Itoa(i + 1)) {
				m.start(level)
				return
			}
		}
	}
}

func (m *MenuScene) start(sceneID string) {
	if m.deps.Loader == nil {
		log.Printf("[MenuScene] 错误: 没有场景加载器，无法进入 %s", sceneID)
		return
	}
	log.Printf("[MenuScene] 开始: %s", sceneID)
	m.requested = true
	m.deps.Loader.RequestLoad(sceneID)
}

// Draw 绘制菜单
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)
	ebitenutil.DebugPrintAt(screen, "STONEKEEP", config.GameWindowWidth/2-27, 180)
	ebitenutil.DebugPrintAt(screen, "[Enter] Continue: "+m.ContinueScene(), config.GameWindowWidth/2-90, 260)
	ebitenutil.DebugPrintAt(screen, "[N]     New game", config.GameWindowWidth/2-90, 280)
	ebitenutil.DebugPrintAt(screen, "[Esc]   Quit", config.GameWindowWidth/2-90, 300)
	for i, level := range m.levels[:min(len(m.levels), 9)] {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%d]     %s", i+1, level), config.GameWindowWidth/2-90, 340+i*20)
	}
}
