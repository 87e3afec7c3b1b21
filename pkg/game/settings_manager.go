package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// 打字速度倍率范围
const (
	MinTypingSpeedScale = 0.25
	MaxTypingSpeedScale = 4.0
)

// GameSettings 全局游戏设置，不绑定到某个存档
type GameSettings struct {
	Fullscreen       bool    `yaml:"fullscreen"`       // 启动时是否全屏
	TypingSpeedScale float64 `yaml:"typingSpeedScale"` // 打字速度倍率，乘到关卡配置的每秒字符数上
	ShowObjectives   bool    `yaml:"showObjectives"`   // 是否显示目标面板
	ShowDebug        bool    `yaml:"showDebug"`        // 是否显示调试信息（距离圈、状态）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen:       false,
		TypingSpeedScale: 1.0,
		ShowObjectives:   true,
		ShowDebug:        false,
	}
}

// SettingsManager 设置管理器
// 设置保存在 gdata 的 settings/global 下，和关卡进度分开
type SettingsManager struct {
	store    yamlStore
	settings *GameSettings
}

// NewSettingsManager 创建设置管理器并读取已保存的设置
//
// gdataManager 可为 nil，此时设置只保存在内存中。
// 读取失败时记录警告并使用默认设置，error 目前总是 nil。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		store:    yamlStore{manager: gdataManager, object: "settings", property: "global"},
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 重新读取设置
// 没有存档时使用默认设置；存档缺少的字段保持默认值
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	found, err := sm.store.load(loaded)
	if err != nil || !found {
		sm.settings = DefaultSettings()
		return err
	}

	loaded.TypingSpeedScale = clampTypingScale(loaded.TypingSpeedScale)
	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save 持久化当前设置，没有存储时为空操作
func (sm *SettingsManager) Save() error {
	if err := sm.store.save(sm.settings); err != nil {
		return err
	}
	if sm.store.available() {
		log.Printf("[SettingsManager] Settings saved")
	}
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏（以下 Set 方法都只改内存，需要 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetTypingSpeedScale 设置打字速度倍率，限制在 [0.25, 4] 内
func (sm *SettingsManager) SetTypingSpeedScale(scale float64) {
	sm.settings.TypingSpeedScale = clampTypingScale(scale)
}

// SetShowObjectives 设置目标面板开关
func (sm *SettingsManager) SetShowObjectives(enabled bool) {
	sm.settings.ShowObjectives = enabled
}

// SetShowDebug 设置调试信息开关
func (sm *SettingsManager) SetShowDebug(enabled bool) {
	sm.settings.ShowDebug = enabled
}

// clampTypingScale 将倍率限制在有效范围内
func clampTypingScale(scale float64) float64 {
	if scale < MinTypingSpeedScale {
		return MinTypingSpeedScale
	}
	if scale > MaxTypingSpeedScale {
		return MaxTypingSpeedScale
	}
	return scale
}
