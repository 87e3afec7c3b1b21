package components

// CollectibleComponent 可拾取的金币
type CollectibleComponent struct {
	// Slot 在关卡配置 coins 列表中的下标，用于记录已拾取的金币
	Slot int

	// Value 拾取后增加的分数
	Value int

	// PickupRadius 与玩家距离小于此值时被拾取
	PickupRadius float64

	// RotationSpeed 自转速度（度/秒）
	RotationSpeed float64

	// Rotation 当前朝向（度，0-360）
	Rotation float64
}
