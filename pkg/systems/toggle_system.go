package systems

import (
	"log"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/interaction"
)

// ToggleSystem 玩家靠近灯或门并按下对应按键时切换状态
type ToggleSystem struct {
	entityManager *ecs.EntityManager
	input         interaction.InputSource
	enabled       interaction.Subsystem // 玩家动作输入开关，可为 nil
}

// NewToggleSystem 创建切换系统
func NewToggleSystem(em *ecs.EntityManager, input interaction.InputSource, enabled interaction.Subsystem) *ToggleSystem {
	return &ToggleSystem{
		entityManager: em,
		input:         input,
		enabled:       enabled,
	}
}

// Update 处理切换输入
func (s *ToggleSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	if s.enabled != nil && !s.enabled.Enabled() {
		return
	}

	_, _, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ToggleComponent, *components.PositionComponent](s.entityManager) {
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if interaction.Distance(playerPos.Vec3(), pos.Vec3()) > toggle.Range {
			continue
		}
		if !s.input.KeyEdge(toggle.Key) {
			continue
		}

		toggle.On = !toggle.On
		log.Printf("[ToggleSystem] %s %s -> %v", toggle.Kind, toggle.Name, toggle.On)
	}
}
