package components

// PlayerComponent 玩家角色（每个关卡只有一个）
type PlayerComponent struct {
	// Speed 移动速度（单位/秒）
	Speed float64

	// FirstPerson 玩家控制器是否处于第一人称模式
	// 由 CameraSwitchSystem 通知，影响移动朝向和身体渲染
	FirstPerson bool

	// Facing 最近一次移动的方向（单位向量，X/Z 平面）
	FacingX float64
	FacingZ float64

	// BodyVisible 角色模型是否可见
	BodyVisible bool

	// RenderersVisible 角色渲染器是否启用
	// 与 BodyVisible 分开，对应"只关闭渲染器"的隐藏方式
	RenderersVisible bool
}
