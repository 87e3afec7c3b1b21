package config

// 窗口与世界坐标
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600

	// WorldToScreenScale 世界坐标 1 个单位对应的像素数（俯视调试视图）
	WorldToScreenScale = 40.0
)

// 玩家
const (
	DefaultPlayerSpeed = 3.0
)

// 金币
const (
	DefaultCoinPickupRadius  = 1.0
	DefaultCoinRotationSpeed = 100.0
)

// 可切换物体
const (
	DefaultToggleRange = 3.0
	DefaultLampKey     = "Y"
	DefaultDoorKey     = "M"
)

// 镜头
const (
	CameraModeTPS = "tps"
	CameraModeFPS = "fps"

	DefaultCameraHideDelay = 0.25
	DefaultFPSKey          = "F"
	DefaultTPSKey          = "T"
)

// 昼夜循环
const (
	DefaultDayDurationMinutes = 24.0
	DefaultStartHour          = 12.0
	MinDayDurationMinutes     = 0.01
)

// 加载画面
const (
	// LoadingMinSpinnerSeconds 加载完成后至少再显示加载画面的时长
	LoadingMinSpinnerSeconds = 1.0
	// LoadingHideDelaySeconds 场景激活后隐藏加载画面的延迟
	LoadingHideDelaySeconds = 0.2
)

// 场景
const (
	SceneMenu      = "Menu"
	SceneLevel1    = "Level_1"
	SceneGame      = "Game_Scene"
	DefaultLevelID = SceneLevel1
)
