package components

import "github.com/decker502/stonekeep/pkg/interaction"

// DialogueComponent 可对话的 NPC
//
// 对话状态机本身在 interaction.DialogueCoordinator 中，
// 组件只持有协调器和 NPC 的可见性开关，由 DialogueSystem 每帧驱动。
type DialogueComponent struct {
	// NPCID 配置中的 NPC 唯一标识
	NPCID string

	// Coordinator 对话协调器
	Coordinator *interaction.DialogueCoordinator

	// Visibility NPC 是否可见（可被其他 NPC 的对话揭示）
	// 隐藏的 NPC 不参与交互
	Visibility *interaction.Flag
}
