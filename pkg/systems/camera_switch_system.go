package systems

import (
	"log"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/interaction"
)

// hideBodyKind 延迟隐藏角色模型在调度器中的类型名
const hideBodyKind = "hide_player_body"

// CameraSwitchSystem 第一/第三人称镜头切换
//
// 按 FPSKey 切到第一人称：打开第一人称镜头、通知玩家控制器，
// HideDelay 秒后隐藏角色模型（再次按下会重新计时）。
// 按 TPSKey 切回第三人称：取消待执行的隐藏，立即显示角色模型。
type CameraSwitchSystem struct {
	entityManager *ecs.EntityManager
	input         interaction.InputSource
	scheduler     *interaction.Scheduler
	enabled       interaction.Subsystem // 镜头切换开关，可为 nil
}

// NewCameraSwitchSystem 创建镜头切换系统
func NewCameraSwitchSystem(em *ecs.EntityManager, input interaction.InputSource, scheduler *interaction.Scheduler, enabled interaction.Subsystem) *CameraSwitchSystem {
	return &CameraSwitchSystem{
		entityManager: em,
		input:         input,
		scheduler:     scheduler,
		enabled:       enabled,
	}
}

// Update 处理镜头切换输入
func (s *CameraSwitchSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	if s.enabled != nil && !s.enabled.Enabled() {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.CameraRigComponent, *components.PlayerComponent](s.entityManager) {
		rig, _ := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, id)
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)

		switch {
		case s.input.KeyEdge(rig.FPSKey):
			s.SwitchToFirstPerson(id, rig, player)
		case s.input.KeyEdge(rig.TPSKey):
			s.SwitchToThirdPerson(id, rig, player)
		}
	}
}

// SwitchToFirstPerson 切到第一人称
func (s *CameraSwitchSystem) SwitchToFirstPerson(id ecs.EntityID, rig *components.CameraRigComponent, player *components.PlayerComponent) {
	setFlag(rig.FPSCamera, true)
	setFlag(rig.TPSCamera, false)
	rig.Mode = components.CameraFirstPerson
	player.FirstPerson = true
	log.Printf("[CameraSwitchSystem] 切换到第一人称")

	hide := func() {
		if rig.DisableRenderersOnly {
			player.RenderersVisible = false
		} else {
			player.BodyVisible = false
		}
		log.Printf("[CameraSwitchSystem] 隐藏角色模型")
	}

	if s.scheduler == nil || rig.HideDelay <= 0 {
		hide()
		return
	}
	s.scheduler.After(interactorOf(id), hideBodyKind, rig.HideDelay, hide)
}

// SwitchToThirdPerson 切到第三人称
func (s *CameraSwitchSystem) SwitchToThirdPerson(id ecs.EntityID, rig *components.CameraRigComponent, player *components.PlayerComponent) {
	if s.scheduler != nil {
		s.scheduler.Cancel(interactorOf(id), hideBodyKind)
	}

	setFlag(rig.FPSCamera, false)
	setFlag(rig.TPSCamera, true)
	rig.Mode = components.CameraThirdPerson
	player.FirstPerson = false
	player.BodyVisible = true
	player.RenderersVisible = true
	log.Printf("[CameraSwitchSystem] 切换到第三人称")
}

func setFlag(f *interaction.Flag, on bool) {
	if f != nil {
		f.SetEnabled(on)
	}
}
