package systems

import (
	"testing"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/input"
)

// TestPlayerMovementPriority 测试 WASD 的优先级
func TestPlayerMovementPriority(t *testing.T) {
	tests := []struct {
		name         string
		held         []string
		wantX, wantZ float64
	}{
		{"无按键", nil, 0, 0},
		{"W 向前", []string{"W"}, 0, -3},
		{"S 向后", []string{"S"}, 0, 3},
		{"A 向左", []string{"A"}, -3, 0},
		{"D 向右", []string{"D"}, 3, 0},
		{"W 优先于 S", []string{"S", "W"}, 0, -3},
		{"A 优先于 D", []string{"D", "A"}, -3, 0},
		{"D 优先于 S", []string{"S", "D"}, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := createTestPlayer(em, 0, 0)
			keys := input.NewScripted()
			for _, k := range tt.held {
				keys.Hold(k)
			}

			system := NewPlayerMovementSystem(em, keys, NewPlayerControls())
			system.Update(1.0)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if !approxEqual(pos.X, tt.wantX) || !approxEqual(pos.Z, tt.wantZ) {
				t.Errorf("position = (%.2f, %.2f), want (%.2f, %.2f)", pos.X, pos.Z, tt.wantX, tt.wantZ)
			}
		})
	}
}

// TestPlayerMovementGated 测试冻结时不移动
func TestPlayerMovementGated(t *testing.T) {
	tests := []struct {
		name        string
		firstPerson bool
		disable     func(pc *PlayerControls)
		wantMove    bool
	}{
		{"全部开启", false, func(pc *PlayerControls) {}, true},
		{"移动关闭", false, func(pc *PlayerControls) { pc.Movement.SetEnabled(false) }, false},
		{"第三人称控制器关闭", false, func(pc *PlayerControls) { pc.ThirdPerson.SetEnabled(false) }, false},
		{"第一人称模式下第三人称控制器关闭", true, func(pc *PlayerControls) { pc.ThirdPerson.SetEnabled(false) }, true},
		{"第一人称控制器关闭", true, func(pc *PlayerControls) { pc.FirstPerson.SetEnabled(false) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := createTestPlayer(em, 0, 0)
			player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
			player.FirstPerson = tt.firstPerson

			controls := NewPlayerControls()
			tt.disable(controls)

			keys := input.NewScripted()
			keys.Hold("D")
			NewPlayerMovementSystem(em, keys, controls).Update(frame)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if moved := pos.X != 0; moved != tt.wantMove {
				t.Errorf("moved = %v, want %v", moved, tt.wantMove)
			}
		})
	}
}

// TestPlayerMovementFacing 测试朝向跟随最近一次移动
func TestPlayerMovementFacing(t *testing.T) {
	em := ecs.NewEntityManager()
	id := createTestPlayer(em, 0, 0)
	keys := input.NewScripted()
	system := NewPlayerMovementSystem(em, keys, nil)

	keys.Hold("A")
	system.Update(frame)
	keys.ReleaseAll()
	system.Update(frame)

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	if player.FacingX != -1 || player.FacingZ != 0 {
		t.Errorf("facing = (%.0f, %.0f), want (-1, 0)", player.FacingX, player.FacingZ)
	}
}
