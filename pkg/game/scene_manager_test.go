package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	saves        int
	saveResult   bool
	activations  int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// OnActivate counts activations.
func (m *MockScene) OnActivate() {
	m.activations++
}

// SaveOnExit counts save requests.
func (m *MockScene) SaveOnExit() bool {
	m.saves++
	return m.saveResult
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
	if sm.CurrentSceneID() != "" {
		t.Errorf("Expected empty scene ID after SwitchTo, got %q", sm.CurrentSceneID())
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update/Draw handle nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerLoadScene 测试通过工厂加载场景
func TestSceneManagerLoadScene(t *testing.T) {
	tests := []struct {
		name      string
		factory   SceneFactory
		sceneID   string
		wantOK    bool
		wantScene bool
	}{
		{
			name:    "未设置工厂",
			factory: nil,
			sceneID: "Level_1",
			wantOK:  false,
		},
		{
			name: "工厂返回 nil",
			factory: func(sceneID string) Scene {
				return nil
			},
			sceneID: "Unknown",
			wantOK:  false,
		},
		{
			name: "成功加载",
			factory: func(sceneID string) Scene {
				return &MockScene{}
			},
			sceneID:   "Level_1",
			wantOK:    true,
			wantScene: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			sm.SetSceneFactory(tt.factory)

			ok := sm.LoadScene(tt.sceneID)
			if ok != tt.wantOK {
				t.Errorf("LoadScene() = %v, want %v", ok, tt.wantOK)
			}
			if (sm.GetCurrentScene() != nil) != tt.wantScene {
				t.Errorf("current scene present = %v, want %v", sm.GetCurrentScene() != nil, tt.wantScene)
			}
			if tt.wantOK && sm.CurrentSceneID() != tt.sceneID {
				t.Errorf("CurrentSceneID() = %q, want %q", sm.CurrentSceneID(), tt.sceneID)
			}
		})
	}
}

// TestSceneManagerSavesOnSwitch 测试切换场景前保存旧场景
func TestSceneManagerSavesOnSwitch(t *testing.T) {
	sm := NewSceneManager()
	old := &MockScene{saveResult: true}
	sm.SwitchTo(old)

	// 切换到同一场景不触发保存
	sm.SwitchTo(old)
	if old.saves != 0 {
		t.Fatalf("Expected no save when switching to same scene, got %d", old.saves)
	}

	sm.SwitchTo(&MockScene{})
	if old.saves != 1 {
		t.Errorf("Expected 1 save on switch, got %d", old.saves)
	}
}

// TestSceneManagerActivateHook 测试只有真正切入的场景收到 OnActivate
func TestSceneManagerActivateHook(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SetSceneFactory(func(sceneID string) Scene { return scene })

	created := sm.CreateScene("Level_1")
	if scene.activations != 0 {
		t.Fatalf("CreateScene() must not activate, got %d activations", scene.activations)
	}

	sm.Activate("Level_1", created)
	if scene.activations != 1 {
		t.Errorf("Activate(): got %d activations, want 1", scene.activations)
	}

	// 重复切到同一个场景不再触发
	sm.Activate("Level_1", created)
	if scene.activations != 1 {
		t.Errorf("re-Activate(): got %d activations, want 1", scene.activations)
	}
}
