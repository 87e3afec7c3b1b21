package systems

import (
	"github.com/decker502/stonekeep/pkg/ecs"
)

// 移动按键，按优先级排列：同时按下时只取第一个
var movementKeys = []struct {
	key    string
	dx, dz float64
}{
	{"W", 0, -1},
	{"A", -1, 0},
	{"D", 1, 0},
	{"S", 0, 1},
}

// PlayerMovementSystem WASD 移动玩家
// 移动开关或当前镜头模式对应的控制器关闭时不移动
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	input         HeldInput
	controls      *PlayerControls
}

// NewPlayerMovementSystem 创建移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, input HeldInput, controls *PlayerControls) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		input:         input,
		controls:      controls,
	}
}

// Update 更新玩家位置
func (s *PlayerMovementSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}

	_, player, pos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	if s.controls != nil {
		if !s.controls.Movement.Enabled() || !s.controls.controllerEnabled(player.FirstPerson) {
			return
		}
	}

	for _, mk := range movementKeys {
		if !s.input.KeyHeld(mk.key) {
			continue
		}
		pos.X += mk.dx * player.Speed * deltaTime
		pos.Z += mk.dz * player.Speed * deltaTime
		player.FacingX = mk.dx
		player.FacingZ = mk.dz
		return
	}
}
