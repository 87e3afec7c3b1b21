package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/stonekeep/pkg/config"
	"github.com/decker502/stonekeep/pkg/interaction"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 加载画面的两个延时续体
const (
	loadingActivateKind = "loading_activate"
	loadingHideKind     = "loading_hide"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// LoadingScreen 加载画面
//
// 作为 interaction.SceneLoader 消费场景切换请求：
//  1. 显示加载画面并创建目标场景
//  2. 至少显示 MinSpinnerSeconds 秒的加载动画
//  3. 激活目标场景
//  4. 激活后 HideDelaySeconds 秒隐藏加载画面
//
// 加载过程中的新请求会被忽略。
type LoadingScreen struct {
	manager   *SceneManager
	scheduler *interaction.Scheduler

	MinSpinnerSeconds float64
	HideDelaySeconds  float64

	visible  bool
	loading  bool
	sceneID  string
	elapsed  float64
	onLoaded []func(sceneID string)
}

// NewLoadingScreen 创建加载画面
func NewLoadingScreen(manager *SceneManager) *LoadingScreen {
	return &LoadingScreen{
		manager:           manager,
		scheduler:         interaction.NewScheduler(),
		MinSpinnerSeconds: config.LoadingMinSpinnerSeconds,
		HideDelaySeconds:  config.LoadingHideDelaySeconds,
	}
}

// OnLoaded 注册场景激活回调
func (ls *LoadingScreen) OnLoaded(fn func(sceneID string)) {
	if fn != nil {
		ls.onLoaded = append(ls.onLoaded, fn)
	}
}

// RequestLoad 实现 interaction.SceneLoader
func (ls *LoadingScreen) RequestLoad(sceneID string) {
	if ls.loading {
		log.Printf("[LoadingScreen] 忽略加载请求 %s: 正在加载 %s", sceneID, ls.sceneID)
		return
	}
	if ls.manager == nil {
		log.Printf("[LoadingScreen] 错误: SceneManager 未设置，无法加载 %s", sceneID)
		return
	}

	log.Printf("[LoadingScreen] 开始加载场景: %s", sceneID)
	ls.visible = true
	ls.loading = true
	ls.sceneID = sceneID
	ls.elapsed = 0

	// 场景切换请求可能来自当前场景的 tick，这里只创建不切换
	scene := ls.manager.CreateScene(sceneID)
	if scene == nil {
		ls.visible = false
		ls.loading = false
		return
	}

	ls.scheduler.After(interaction.NoInteractor, loadingActivateKind, ls.MinSpinnerSeconds, func() {
		ls.activate(sceneID, scene)
	})
}

func (ls *LoadingScreen) activate(sceneID string, scene Scene) {
	ls.manager.Activate(sceneID, scene)
	ls.loading = false
	for _, fn := range ls.onLoaded {
		fn(sceneID)
	}

	ls.scheduler.After(interaction.NoInteractor, loadingHideKind, ls.HideDelaySeconds, func() {
		ls.visible = false
		log.Printf("[LoadingScreen] 加载画面已隐藏")
	})
}

// Visible 加载画面是否显示
func (ls *LoadingScreen) Visible() bool {
	return ls.visible
}

// Loading 是否有场景正在加载（尚未激活）
func (ls *LoadingScreen) Loading() bool {
	return ls.loading
}

// Update 推进加载流程，由宿主每帧调用
func (ls *LoadingScreen) Update(deltaTime float64) {
	if ls.visible {
		ls.elapsed += deltaTime
	}
	ls.scheduler.Update(deltaTime)
}

// Draw 在当前场景之上绘制加载画面
func (ls *LoadingScreen) Draw(screen *ebiten.Image) {
	if !ls.visible {
		return
	}

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{10, 10, 16, 255}, false)

	frame := spinnerFrames[int(ls.elapsed*8)%len(spinnerFrames)]
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Loading %s %s", ls.sceneID, frame), int(w)/2-60, int(h)/2)
}
