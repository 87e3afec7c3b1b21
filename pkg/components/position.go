package components

import "github.com/decker502/stonekeep/pkg/interaction"

// PositionComponent 实体的世界坐标
// X/Z 是地面平面，Y 是高度（俯视调试视图忽略 Y）
type PositionComponent struct {
	X float64
	Y float64
	Z float64
}

// Vec3 转换为交互核心使用的坐标
func (p *PositionComponent) Vec3() interaction.Vec3 {
	return interaction.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}
