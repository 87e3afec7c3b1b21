package systems

import "github.com/decker502/stonekeep/pkg/interaction"

// PlayerControls 玩家控制相关的子系统开关
//
// 每个开关注册到 interaction.ControlGate，对话开始时被冻结，
// 对应的系统在开关关闭时跳过自己的输入处理。
type PlayerControls struct {
	Movement     *interaction.Flag // 移动
	Input        *interaction.Flag // 玩家动作输入（灯、门）
	ThirdPerson  *interaction.Flag // 第三人称控制器
	FirstPerson  *interaction.Flag // 第一人称控制器
	CameraSwitch *interaction.Flag // 镜头切换
}

// NewPlayerControls 创建全部开启的控制开关
func NewPlayerControls() *PlayerControls {
	return &PlayerControls{
		Movement:     interaction.NewFlag(true),
		Input:        interaction.NewFlag(true),
		ThirdPerson:  interaction.NewFlag(true),
		FirstPerson:  interaction.NewFlag(true),
		CameraSwitch: interaction.NewFlag(true),
	}
}

// Register 将所有开关注册到控制闸门
func (pc *PlayerControls) Register(gate *interaction.ControlGate) {
	gate.Register(interaction.SubsystemMovement, pc.Movement)
	gate.Register(interaction.SubsystemInput, pc.Input)
	gate.Register(interaction.SubsystemThirdPerson, pc.ThirdPerson)
	gate.Register(interaction.SubsystemFirstPerson, pc.FirstPerson)
	gate.Register(interaction.SubsystemCameraSwitch, pc.CameraSwitch)
}

// controllerEnabled 当前镜头模式对应的控制器是否开启
func (pc *PlayerControls) controllerEnabled(firstPerson bool) bool {
	if firstPerson {
		return pc.FirstPerson.Enabled()
	}
	return pc.ThirdPerson.Enabled()
}
