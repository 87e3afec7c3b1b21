package scenes

import (
	"sort"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/interaction"
)

// 关卡状态的只读访问，供终端界面和测试使用

// ID 关卡ID
func (s *LevelScene) ID() string {
	return s.cfg.ID
}

// Name 关卡名称
func (s *LevelScene) Name() string {
	return s.cfg.Name
}

// Objective 目标面板文本
func (s *LevelScene) Objective() string {
	return s.objectiveText.Message()
}

// Tracker 目标清单
func (s *LevelScene) Tracker() *interaction.MilestoneTracker {
	return s.tracker
}

// ScoreText 分数文本
func (s *LevelScene) ScoreText() string {
	return s.scoreText.Message()
}

// Score 当前分数
func (s *LevelScene) Score() int {
	return s.score.Score()
}

// Dialogue 对话面板内容和是否显示
func (s *LevelScene) Dialogue() (speaker, message string, visible bool) {
	return s.dialogueText.Speaker(), s.dialogueText.Message(), s.dialoguePanel.Visible()
}

// Prompt 当前交互提示（提示归属者的名称和按键）
func (s *LevelScene) Prompt() (name, key string, visible bool) {
	if !s.broker.Visible() {
		return "", "", false
	}
	for _, c := range s.coordinators {
		if s.broker.IsOwner(c.ID()) {
			return c.Name(), c.InteractKey(), true
		}
	}
	return "", "", false
}

// Coordinator 按 NPC ID 查找对话协调器
func (s *LevelScene) Coordinator(npcID string) (*interaction.DialogueCoordinator, bool) {
	c, ok := s.coordinators[npcID]
	return c, ok
}

// NPCIDs 所有 NPC ID（排序后）
func (s *LevelScene) NPCIDs() []string {
	ids := make([]string, 0, len(s.coordinators))
	for id := range s.coordinators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NPCVisible NPC 当前是否可见
func (s *LevelScene) NPCVisible(npcID string) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.DialogueComponent](s.entityManager) {
		d, _ := ecs.GetComponent[*components.DialogueComponent](s.entityManager, id)
		if d.NPCID == npcID {
			return d.Visibility == nil || d.Visibility.Visible()
		}
	}
	return false
}

// Gate 玩家控制闸门
func (s *LevelScene) Gate() *interaction.ControlGate {
	return s.gate
}

// Player 玩家组件和位置
func (s *LevelScene) Player() (*components.PlayerComponent, *components.PositionComponent) {
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	return player, pos
}

// CameraMode 当前镜头模式
func (s *LevelScene) CameraMode() components.CameraMode {
	rig, ok := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, s.player)
	if !ok {
		return components.CameraThirdPerson
	}
	return rig.Mode
}

// Toggles 所有灯和门
func (s *LevelScene) Toggles() []*components.ToggleComponent {
	ids := ecs.GetEntitiesWith1[*components.ToggleComponent](s.entityManager)
	toggles := make([]*components.ToggleComponent, 0, len(ids))
	for _, id := range ids {
		t, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		toggles = append(toggles, t)
	}
	return toggles
}

// CoinsRemaining 剩余金币
func (s *LevelScene) CoinsRemaining() int {
	return s.collectibleSystem.Remaining()
}

// Hour 当前游戏内时间（小时）
func (s *LevelScene) Hour() float64 {
	return s.cycle.Hour()
}

// SetHour 设置游戏内时间
func (s *LevelScene) SetHour(hour float64) {
	s.cycle.SetHour(hour)
}

// Typing 打字效果是否正在进行
func (s *LevelScene) Typing() bool {
	return s.typewriter != nil && s.typewriter.Typing()
}

// FiredAnimations 某个 NPC 已触发的结束动画
func (s *LevelScene) FiredAnimations(npcID string) []string {
	if a, ok := s.animators[npcID]; ok {
		return a.Fired()
	}
	return nil
}
