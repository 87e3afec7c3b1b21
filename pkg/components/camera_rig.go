package components

import "github.com/decker502/stonekeep/pkg/interaction"

// CameraMode 镜头模式
type CameraMode int

const (
	// CameraThirdPerson 第三人称
	CameraThirdPerson CameraMode = iota
	// CameraFirstPerson 第一人称
	CameraFirstPerson
)

// String 返回 CameraMode 的字符串表示
func (m CameraMode) String() string {
	switch m {
	case CameraThirdPerson:
		return "TPS"
	case CameraFirstPerson:
		return "FPS"
	default:
		return "Unknown"
	}
}

// CameraRigComponent 第一/第三人称镜头组合
//
// 两个镜头各有一个可见性开关，同一时刻只开一个。
// 切到第一人称时角色模型在 HideDelay 秒后才隐藏，
// 期间切回第三人称会取消隐藏。
type CameraRigComponent struct {
	Mode CameraMode

	FPSCamera *interaction.Flag
	TPSCamera *interaction.Flag

	// FPSKey / TPSKey 切换按键
	FPSKey string
	TPSKey string

	// HideDelay 切到第一人称后隐藏角色模型的延迟（秒）
	HideDelay float64

	// DisableRenderersOnly 为 true 时只关闭渲染器，否则隐藏整个模型
	DisableRenderersOnly bool
}
