package components

// ToggleKind 可切换物体的种类
type ToggleKind int

const (
	// ToggleLamp 灯，On 表示点亮
	ToggleLamp ToggleKind = iota
	// ToggleDoor 门，On 表示打开
	ToggleDoor
)

// String 返回 ToggleKind 的字符串表示
func (k ToggleKind) String() string {
	switch k {
	case ToggleLamp:
		return "Lamp"
	case ToggleDoor:
		return "Door"
	default:
		return "Unknown"
	}
}

// ToggleComponent 靠近后按键切换状态的物体（灯、门）
type ToggleComponent struct {
	Name  string
	Kind  ToggleKind
	Key   string  // 切换按键
	Range float64 // 交互距离
	On    bool
}
