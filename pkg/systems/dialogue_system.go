package systems

import (
	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/interaction"
)

// SkipTypingKey 打字过程中按下立即显示整句
const SkipTypingKey = "Space"

// DialogueSystem 每帧驱动所有 NPC 的对话协调器
//
// 执行顺序：
//  1. 推进打字效果，按下 SkipTypingKey 时直接显示整句
//  2. 按实体ID升序对每个可见 NPC 调用 OnTick（实体ID小的先得到提示归属）
//
// 延时续体由场景统一推进，不在这里调用 Scheduler.Update。
type DialogueSystem struct {
	entityManager *ecs.EntityManager
	input         interaction.InputSource
	typewriter    *interaction.Typewriter // 可为 nil（关闭打字效果）
}

// NewDialogueSystem 创建对话系统
func NewDialogueSystem(em *ecs.EntityManager, input interaction.InputSource, typewriter *interaction.Typewriter) *DialogueSystem {
	return &DialogueSystem{
		entityManager: em,
		input:         input,
		typewriter:    typewriter,
	}
}

// Update 更新对话系统
func (s *DialogueSystem) Update(deltaTime float64) {
	if s.typewriter != nil {
		s.typewriter.Update(deltaTime)
		if s.typewriter.Typing() && s.input != nil && s.input.KeyEdge(SkipTypingKey) {
			s.typewriter.Skip()
		}
	}

	_, _, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	player := playerPos.Vec3()

	for _, id := range ecs.GetEntitiesWith2[*components.DialogueComponent, *components.PositionComponent](s.entityManager) {
		dialogue, _ := ecs.GetComponent[*components.DialogueComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if dialogue.Coordinator == nil {
			continue
		}
		if dialogue.Visibility != nil && !dialogue.Visibility.Visible() {
			continue
		}

		coordinator := dialogue.Coordinator
		coordinator.SetPosition(pos.Vec3())

		edge := s.input != nil && s.input.KeyEdge(coordinator.InteractKey())
		coordinator.OnTick(player, edge)
	}
}

// ActiveCoordinator 返回当前会话不处于 Idle 的协调器（最多一个）
func (s *DialogueSystem) ActiveCoordinator() (*interaction.DialogueCoordinator, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.DialogueComponent](s.entityManager) {
		dialogue, _ := ecs.GetComponent[*components.DialogueComponent](s.entityManager, id)
		if dialogue.Coordinator == nil {
			continue
		}
		if dialogue.Coordinator.Session().State() != interaction.SessionIdle {
			return dialogue.Coordinator, true
		}
	}
	return nil, false
}
