package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/stonekeep/pkg/interaction"
)

const validLevelYAML = `id: "Level_1"
name: "Stonekeep Village"
nextScene: "Game_Scene"
milestones:
  - "Talk to the elder"
  - "Find the blacksmith"
player:
  position: {x: 0, y: 0, z: 0}
npcs:
  - id: elder
    speaker: "Elder"
    position: {x: 2, y: 0, z: 0}
    milestoneIndex: 0
    reveal: smith
    endAnimation:
      trigger: "Bow"
      holdDuration: 1.5
    lines:
      - message: "Welcome, traveller."
      - speaker: "Elder"
        message: "Find the smith."
  - id: smith
    speaker: "Smith"
    hidden: true
    position: {x: 8, y: 0, z: 3}
    interactKey: "E"
    lines:
      - message: "Hm?"
coins:
  - {x: 1, y: 0, z: 1}
lamps:
  - name: "lamp_square"
    position: {x: 4, y: 0, z: 0}
doors:
  - name: "door_inn"
    position: {x: 6, y: 0, z: 0}
    on: true
`

// TestLoadLevelConfig 测试关卡配置文件加载
func TestLoadLevelConfig(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "level_1.yaml")
	if err := os.WriteFile(testFile, []byte(validLevelYAML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	config, err := LoadLevelConfig(testFile)
	if err != nil {
		t.Fatalf("LoadLevelConfig() failed: %v", err)
	}

	if config.ID != "Level_1" {
		t.Errorf("Expected ID 'Level_1', got '%s'", config.ID)
	}
	if config.NextScene != "Game_Scene" {
		t.Errorf("Expected nextScene 'Game_Scene', got '%s'", config.NextScene)
	}
	if len(config.Milestones) != 2 {
		t.Fatalf("Expected 2 milestones, got %d", len(config.Milestones))
	}
	if len(config.NPCs) != 2 {
		t.Fatalf("Expected 2 npcs, got %d", len(config.NPCs))
	}

	elder := config.NPCs[0]
	if elder.Milestone() != 0 {
		t.Errorf("Expected elder milestone 0, got %d", elder.Milestone())
	}
	if elder.Lines[0].Speaker != "Elder" {
		t.Errorf("Expected speaker fallback 'Elder', got '%s'", elder.Lines[0].Speaker)
	}
	anim := elder.EndAnimation.ToInteraction()
	if !anim.Enabled || anim.TriggerName != "Bow" || anim.HoldSeconds != 1.5 || anim.WaitForSignal {
		t.Errorf("Unexpected end animation: %+v", anim)
	}

	smith := config.NPCs[1]
	if smith.Milestone() != interaction.NoMilestone {
		t.Errorf("Expected smith without milestone, got %d", smith.Milestone())
	}
	if !smith.Hidden {
		t.Error("Expected smith to start hidden")
	}
	if smith.InteractKey != "E" {
		t.Errorf("Expected smith interact key 'E', got '%s'", smith.InteractKey)
	}
	if smith.EndAnimation.ToInteraction().Enabled {
		t.Error("Expected smith end animation disabled")
	}
}

// TestLoadLevelConfigFileNotFound 测试文件不存在
func TestLoadLevelConfigFileNotFound(t *testing.T) {
	_, err := LoadLevelConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

// TestApplyDefaults 测试默认值
func TestApplyDefaults(t *testing.T) {
	config, err := ParseLevelConfig([]byte(validLevelYAML), "inline")
	if err != nil {
		t.Fatalf("ParseLevelConfig() failed: %v", err)
	}

	if config.Player.Speed != DefaultPlayerSpeed {
		t.Errorf("Expected player speed %.1f, got %.1f", DefaultPlayerSpeed, config.Player.Speed)
	}
	if config.NPCs[0].ActivationRange != interaction.DefaultActivationRange {
		t.Errorf("Expected activation range %.1f, got %.1f", interaction.DefaultActivationRange, config.NPCs[0].ActivationRange)
	}
	if config.NPCs[0].InteractKey != interaction.DefaultInteractKey {
		t.Errorf("Expected interact key %s, got %s", interaction.DefaultInteractKey, config.NPCs[0].InteractKey)
	}
	if config.Coin.PickupRadius != DefaultCoinPickupRadius || config.Coin.RotationSpeed != DefaultCoinRotationSpeed || config.Coin.Value != 1 {
		t.Errorf("Unexpected coin defaults: %+v", config.Coin)
	}

	lamp := config.Lamps[0]
	if lamp.Key != DefaultLampKey || lamp.Range != DefaultToggleRange || lamp.On == nil || !*lamp.On {
		t.Errorf("Unexpected lamp defaults: key=%s range=%.1f on=%v", lamp.Key, lamp.Range, lamp.On)
	}
	door := config.Doors[0]
	if door.Key != DefaultDoorKey || door.On == nil || !*door.On {
		t.Errorf("Expected door key M and explicit on=true, got key=%s on=%v", door.Key, door.On)
	}

	if config.Camera.StartMode != CameraModeTPS || config.Camera.HideDelay != DefaultCameraHideDelay {
		t.Errorf("Unexpected camera defaults: %+v", config.Camera)
	}
	if config.Camera.FPSKey != "F" || config.Camera.TPSKey != "T" {
		t.Errorf("Unexpected camera keys: %+v", config.Camera)
	}
	if config.DayNight.DayDurationMinutes != DefaultDayDurationMinutes || config.DayNight.StartHour != DefaultStartHour || config.DayNight.TimeScale != 1 {
		t.Errorf("Unexpected day/night defaults: %+v", config.DayNight)
	}
	if config.Typing.CharsPerSecond != 0 {
		t.Errorf("Expected typing disabled by default, got %.1f", config.Typing.CharsPerSecond)
	}
}

// TestValidateLevelConfig 测试配置校验
func TestValidateLevelConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "缺少ID",
			yaml:    `name: "x"`,
			wantErr: "level ID is required",
		},
		{
			name:    "缺少名称",
			yaml:    `id: "x"`,
			wantErr: "level name is required",
		},
		{
			name: "NPC ID 重复",
			yaml: `id: x
name: x
npcs:
  - id: a
  - id: a
`,
			wantErr: "duplicate id",
		},
		{
			name: "目标索引越界",
			yaml: `id: x
name: x
milestones: ["one"]
npcs:
  - id: a
    milestoneIndex: 1
`,
			wantErr: "milestoneIndex 1 out of range",
		},
		{
			name: "揭示目标不存在",
			yaml: `id: x
name: x
npcs:
  - id: a
    reveal: ghost
`,
			wantErr: "reveal target",
		},
		{
			name: "负的保持时长",
			yaml: `id: x
name: x
npcs:
  - id: a
    endAnimation:
      trigger: Wave
      holdDuration: -1
`,
			wantErr: "holdDuration",
		},
		{
			name: "非法镜头模式",
			yaml: `id: x
name: x
camera:
  startMode: orbit
`,
			wantErr: "camera.startMode",
		},
		{
			name: "起始小时越界",
			yaml: `id: x
name: x
dayNight:
  startHour: 25
`,
			wantErr: "dayNight.startHour",
		},
		{
			name: "动画事件缺少触发器",
			yaml: `id: x
name: x
animations:
  - duration: 1
`,
			wantErr: "trigger is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml), "inline")
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestParseLevelConfigInvalidYAML 测试 YAML 语法错误
func TestParseLevelConfigInvalidYAML(t *testing.T) {
	_, err := ParseLevelConfig([]byte("id: [unclosed"), "broken.yaml")
	if err == nil {
		t.Fatal("Expected parse error, got nil")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("Expected error to mention source, got %v", err)
	}
}
