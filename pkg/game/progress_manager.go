package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// LevelProgress 单个关卡的进度
type LevelProgress struct {
	MilestoneIndex int      `yaml:"milestoneIndex"`           // 已完成的目标数量
	Score          int      `yaml:"score"`                    // 分数
	Completed      bool     `yaml:"completed"`                // 所有目标是否已完成
	CollectedCoins []int    `yaml:"collectedCoins,omitempty"` // 已拾取金币在关卡配置中的下标
	RevealedNPCs   []string `yaml:"revealedNPCs,omitempty"`   // 初始隐藏、之后被揭示的 NPC
}

// IsZero 是否没有任何进度
func (p LevelProgress) IsZero() bool {
	return p.MilestoneIndex == 0 && p.Score == 0 && !p.Completed &&
		len(p.CollectedCoins) == 0 && len(p.RevealedNPCs) == 0
}

// ProgressData 存档数据
type ProgressData struct {
	Version      int                      `yaml:"version"`
	CurrentScene string                   `yaml:"currentScene"` // 上次所在的场景
	Levels       map[string]LevelProgress `yaml:"levels"`
}

const progressDataVersion = 1

// ProgressManager 进度管理器
// 每个关卡的目标进度和分数保存在 gdata 的 progress/slot_0 下
type ProgressManager struct {
	store yamlStore
	data  *ProgressData
}

func newProgressData() *ProgressData {
	return &ProgressData{
		Version: progressDataVersion,
		Levels:  make(map[string]LevelProgress),
	}
}

// NewProgressManager 创建进度管理器并读取存档
// gdataManager 可为 nil（只在内存中记录进度）；读取失败时从空进度开始
func NewProgressManager(gdataManager *gdata.Manager) *ProgressManager {
	pm := &ProgressManager{
		store: yamlStore{manager: gdataManager, object: "progress", property: "slot_0"},
		data:  newProgressData(),
	}
	if err := pm.Load(); err != nil {
		log.Printf("[ProgressManager] Warning: %v (starting fresh)", err)
	}
	return pm
}

// Load 重新读取存档，没有存档时使用空进度
func (pm *ProgressManager) Load() error {
	var loaded ProgressData
	found, err := pm.store.load(&loaded)
	if err != nil || !found {
		pm.data = newProgressData()
		return err
	}
	if loaded.Version > progressDataVersion {
		pm.data = newProgressData()
		return fmt.Errorf("unsupported progress version %d (max %d)", loaded.Version, progressDataVersion)
	}
	if loaded.Levels == nil {
		loaded.Levels = make(map[string]LevelProgress)
	}
	loaded.Version = progressDataVersion

	pm.data = &loaded
	log.Printf("[ProgressManager] Progress loaded: %d levels", len(loaded.Levels))
	return nil
}

// Save 持久化进度，没有存储时为空操作
func (pm *ProgressManager) Save() error {
	if err := pm.store.save(pm.data); err != nil {
		return err
	}
	if pm.store.available() {
		log.Printf("[ProgressManager] Progress saved")
	}
	return nil
}

// Level 返回关卡进度，未记录的关卡返回零值
func (pm *ProgressManager) Level(levelID string) LevelProgress {
	return pm.data.Levels[levelID]
}

// SetLevel 记录关卡进度（仅内存，需调用 Save 持久化）
func (pm *ProgressManager) SetLevel(levelID string, progress LevelProgress) {
	if progress.MilestoneIndex < 0 {
		progress.MilestoneIndex = 0
	}
	pm.data.Levels[levelID] = progress
}

// CurrentScene 返回上次记录的场景ID
func (pm *ProgressManager) CurrentScene() string {
	return pm.data.CurrentScene
}

// SetCurrentScene 记录当前场景ID
func (pm *ProgressManager) SetCurrentScene(sceneID string) {
	pm.data.CurrentScene = sceneID
}

// Reset 清空所有进度并覆盖存档
func (pm *ProgressManager) Reset() error {
	pm.data = newProgressData()
	return pm.Save()
}
