package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据场景ID（如 "Menu"、"Level_1"、"Game_Scene"）创建场景，避免循环依赖
// 无法创建时返回 nil
type SceneFactory func(sceneID string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene   Scene
	currentSceneID string
	sceneFactory   SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// 旧场景如果实现了 Saveable，会先保存进度；新场景如果实现了 Activatable，切入后收到 OnActivate
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.switchTo("", scene)
}

func (sm *SceneManager) switchTo(sceneID string, scene Scene) {
	if saveable, ok := sm.currentScene.(Saveable); ok && sm.currentScene != scene {
		if !saveable.SaveOnExit() {
			log.Printf("[SceneManager] 警告: 场景 %s 退出时保存失败", sm.currentSceneID)
		}
	}
	changed := sm.currentScene != scene
	sm.currentScene = scene
	sm.currentSceneID = sceneID

	if activatable, ok := scene.(Activatable); ok && changed {
		activatable.OnActivate()
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentSceneID 返回通过 LoadScene/Activate 切换到的场景ID
// 通过 SwitchTo 直接切换时为空
func (sm *SceneManager) CurrentSceneID() string {
	return sm.currentSceneID
}

// CreateScene 使用工厂创建场景但不切换
func (sm *SceneManager) CreateScene(sceneID string) Scene {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return nil
	}

	scene := sm.sceneFactory(sceneID)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", sceneID)
	}
	return scene
}

// Activate 切换到已创建的场景并记录场景ID
func (sm *SceneManager) Activate(sceneID string, scene Scene) {
	if scene == nil {
		return
	}
	sm.switchTo(sceneID, scene)
	log.Printf("[SceneManager] 成功切换到场景: %s", sceneID)
}

// LoadScene 立即创建并切换到指定场景
// 返回是否切换成功
func (sm *SceneManager) LoadScene(sceneID string) bool {
	log.Printf("[SceneManager] 加载场景: %s", sceneID)

	scene := sm.CreateScene(sceneID)
	if scene == nil {
		return false
	}
	sm.Activate(sceneID, scene)
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
