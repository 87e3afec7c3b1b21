package systems

import (
	"testing"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/input"
	"github.com/decker502/stonekeep/pkg/interaction"
)

type cameraRig struct {
	em        *ecs.EntityManager
	keys      *input.Scripted
	scheduler *interaction.Scheduler
	enabled   *interaction.Flag
	system    *CameraSwitchSystem
	rig       *components.CameraRigComponent
	player    *components.PlayerComponent
}

func newCameraRig(renderersOnly bool) *cameraRig {
	r := &cameraRig{
		em:        ecs.NewEntityManager(),
		keys:      input.NewScripted(),
		scheduler: interaction.NewScheduler(),
		enabled:   interaction.NewFlag(true),
	}
	id := createTestPlayer(r.em, 0, 0)
	r.player, _ = ecs.GetComponent[*components.PlayerComponent](r.em, id)
	r.rig = &components.CameraRigComponent{
		Mode:                 components.CameraThirdPerson,
		FPSCamera:            interaction.NewFlag(false),
		TPSCamera:            interaction.NewFlag(true),
		FPSKey:               "F",
		TPSKey:               "T",
		HideDelay:            0.25,
		DisableRenderersOnly: renderersOnly,
	}
	ecs.AddComponent(r.em, id, r.rig)
	r.system = NewCameraSwitchSystem(r.em, r.keys, r.scheduler, r.enabled)
	return r
}

func (r *cameraRig) run(seconds float64) {
	for elapsed := 0.0; elapsed < seconds-1e-9; elapsed += frame {
		r.scheduler.Update(frame)
		r.system.Update(frame)
		r.keys.EndTick()
	}
}

func (r *cameraRig) press(key string) {
	r.keys.Press(key)
	r.scheduler.Update(frame)
	r.system.Update(frame)
	r.keys.EndTick()
}

// TestCameraSwitchDelayedHide 测试切到第一人称后延迟隐藏模型
func TestCameraSwitchDelayedHide(t *testing.T) {
	r := newCameraRig(false)

	r.press("F")
	if r.rig.Mode != components.CameraFirstPerson || !r.player.FirstPerson {
		t.Fatal("Expected first person mode after F")
	}
	if !r.rig.FPSCamera.Enabled() || r.rig.TPSCamera.Enabled() {
		t.Error("Expected FPS camera on and TPS camera off")
	}
	if !r.player.BodyVisible {
		t.Fatal("Body must stay visible until the hide delay elapses")
	}

	r.run(0.3)
	if r.player.BodyVisible {
		t.Error("Expected body hidden after hide delay")
	}
	if !r.player.RenderersVisible {
		t.Error("Renderers should stay on when hiding the whole body")
	}
}

// TestCameraSwitchBackCancelsHide 测试切回第三人称取消待执行的隐藏
func TestCameraSwitchBackCancelsHide(t *testing.T) {
	r := newCameraRig(false)

	r.press("F")
	r.run(0.1)
	r.press("T")
	r.run(1.0)

	if !r.player.BodyVisible {
		t.Error("Cancelled hide must never fire")
	}
	if r.rig.Mode != components.CameraThirdPerson || r.player.FirstPerson {
		t.Error("Expected third person mode after T")
	}
	if r.rig.FPSCamera.Enabled() || !r.rig.TPSCamera.Enabled() {
		t.Error("Expected TPS camera on and FPS camera off")
	}
}

// TestCameraSwitchRenderersOnly 测试只关闭渲染器
func TestCameraSwitchRenderersOnly(t *testing.T) {
	r := newCameraRig(true)

	r.press("F")
	r.run(0.3)

	if r.player.RenderersVisible {
		t.Error("Expected renderers disabled")
	}
	if !r.player.BodyVisible {
		t.Error("Body object should stay visible in renderers-only mode")
	}

	r.press("T")
	if !r.player.RenderersVisible || !r.player.BodyVisible {
		t.Error("Expected body fully visible after switching back")
	}
}

// TestCameraSwitchRepressRestartsDelay 测试再次按下重新计时
func TestCameraSwitchRepressRestartsDelay(t *testing.T) {
	r := newCameraRig(false)

	r.press("F")
	r.run(0.2)
	r.press("F")
	r.run(0.15)

	if !r.player.BodyVisible {
		t.Error("Re-entering first person should restart the hide delay")
	}
	if !r.scheduler.Pending(1, hideBodyKind) {
		t.Error("Expected a pending hide")
	}

	r.run(0.15)
	if r.player.BodyVisible {
		t.Error("Expected body hidden after the restarted delay")
	}
}

// TestCameraSwitchFrozen 测试对话冻结时忽略切换
func TestCameraSwitchFrozen(t *testing.T) {
	r := newCameraRig(false)
	r.enabled.SetEnabled(false)

	r.press("F")
	if r.rig.Mode != components.CameraThirdPerson {
		t.Error("Camera switch must be ignored while frozen")
	}
}
