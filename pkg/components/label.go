package components

// LabelComponent 世界中的文字标签（NPC 名字、灯和门的名称）
type LabelComponent struct {
	Text string
}
