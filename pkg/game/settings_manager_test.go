package game

import (
	"testing"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.TypingSpeedScale != 1.0 {
		t.Errorf("TypingSpeedScale: got %v, want 1.0", settings.TypingSpeedScale)
	}
	if !settings.ShowObjectives {
		t.Error("ShowObjectives: got false, want true")
	}
	if settings.ShowDebug {
		t.Error("ShowDebug: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试降级模式
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	sm.SetShowDebug(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	// 降级模式下 Load() 恢复默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().ShowDebug {
		t.Error("After Load() in degraded mode, ShowDebug should be default false")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_stonekeep_settings")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetTypingSpeedScale(2)
	sm1.SetShowObjectives(false)
	sm1.SetShowDebug(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}
	settings := sm2.GetSettings()

	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.TypingSpeedScale != 2 {
		t.Errorf("Loaded TypingSpeedScale: got %v, want 2", settings.TypingSpeedScale)
	}
	if settings.ShowObjectives {
		t.Error("Loaded ShowObjectives: got true, want false")
	}
	if !settings.ShowDebug {
		t.Error("Loaded ShowDebug: got false, want true")
	}
}

// TestClampTypingScale 测试倍率范围
func TestClampTypingScale(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.0, 1.0},
		{0.25, 0.25},
		{4.0, 4.0},
		{0, 0.25},
		{-1, 0.25},
		{10, 4.0},
	}

	for _, tt := range tests {
		if result := clampTypingScale(tt.input); result != tt.expected {
			t.Errorf("clampTypingScale(%v): got %v, want %v", tt.input, result, tt.expected)
		}
	}
}
