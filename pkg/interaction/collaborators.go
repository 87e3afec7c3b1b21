// Package interaction 实现与引擎无关的交互核心
//
// 包含对话会话状态机、对话协调器、交互提示归属仲裁、玩家控制闸门、
// 目标清单和可取消的延时续体。所有逻辑都运行在外部驱动的单线程 tick 上，
// 渲染、物理、动画播放和场景加载通过本文件定义的窄接口访问。
package interaction

import "math"

// Vec3 世界坐标
type Vec3 struct {
	X, Y, Z float64
}

// Distance 返回两点之间的欧氏距离
func Distance(a, b Vec3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// InteractorID 交互者标识
// 仅用于身份比较和查找，不持有交互者的生命周期
type InteractorID uint64

// NoInteractor 表示没有任何交互者（0 保留为无效ID，与 ecs.EntityID 一致）
const NoInteractor InteractorID = 0

// DialogueLine 一条台词，创作后不可变
type DialogueLine struct {
	Speaker string `yaml:"speaker"`
	Message string `yaml:"message"`
}

// TextDisplay 文本显示面板（说话人 + 台词）
type TextDisplay interface {
	SetSpeaker(text string)
	SetMessage(text string)
}

// Visibility UI 面板或提示的显示开关
type Visibility interface {
	Show()
	Hide()
	Visible() bool
}

// AnimationTrigger 动画触发器，触发后不等待结果
// 动画完成由外部系统通过 DialogueCoordinator.NotifyComplete 显式通知
type AnimationTrigger interface {
	Fire(triggerName string)
}

// SceneLoader 场景加载请求的消费者
// 真正的异步加载由外部完成，不向核心回报任何结果
type SceneLoader interface {
	RequestLoad(sceneID string)
}

// InputSource 按键输入源
// KeyEdge 在一次按下中只返回一次 true（边沿，而非按住）
type InputSource interface {
	KeyEdge(key string) bool
}

// Flag 最简单的可见性/开关实现，常用于无界面的宿主和测试
type Flag struct {
	on bool
}

// NewFlag 创建初始状态为 on 的开关
func NewFlag(on bool) *Flag {
	return &Flag{on: on}
}

// Show 打开
func (f *Flag) Show() { f.on = true }

// Hide 关闭
func (f *Flag) Hide() { f.on = false }

// Visible 是否打开
func (f *Flag) Visible() bool { return f.on }

// Enabled 与 Visible 相同，使 Flag 同时满足 Subsystem 接口
func (f *Flag) Enabled() bool { return f.on }

// SetEnabled 设置开关状态
func (f *Flag) SetEnabled(enabled bool) { f.on = enabled }
