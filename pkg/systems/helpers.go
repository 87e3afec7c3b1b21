package systems

import (
	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/interaction"
)

// HeldInput 既有按下边沿又有按住状态的输入源
type HeldInput interface {
	interaction.InputSource
	KeyHeld(key string) bool
}

// findPlayer 返回第一个玩家实体（按ID排序）
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PlayerComponent, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		return id, player, pos, true
	}
	return 0, nil, nil, false
}

// interactorOf 将实体ID转换为交互者ID
func interactorOf(id ecs.EntityID) interaction.InteractorID {
	return interaction.InteractorID(id)
}
