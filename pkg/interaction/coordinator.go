package interaction

import (
	"errors"
	"log"
)

// NoMilestone 表示对话不推进任何目标
const NoMilestone = -1

// DefaultActivationRange 默认触发距离
const DefaultActivationRange = 3.0

// DefaultInteractKey 默认交互按键
const DefaultInteractKey = "M"

// EndAnimation 对话结束后的可选动画
type EndAnimation struct {
	Enabled       bool    // 是否在对话结束后触发动画
	TriggerName   string  // 动画触发器名称，如 "Celebrate"
	HoldSeconds   float64 // 触发后保持冻结的时长
	WaitForSignal bool    // 为 true 时等待 NotifyComplete 才解除冻结
}

// CoordinatorConfig 对话协调器配置（数据，来自关卡配置）
type CoordinatorConfig struct {
	ID              InteractorID
	Name            string
	Position        Vec3
	ActivationRange float64
	InteractKey     string
	Lines           []DialogueLine
	MilestoneIndex  int // NoMilestone 表示不推进目标
	EndAnimation    EndAnimation
}

// Collaborators 协调器依赖的外部对象，每一项都可以缺失
// 缺失的能力只跳过对应动作，不会中断 tick
type Collaborators struct {
	Text      TextDisplay      // 说话人/台词显示
	Panel     Visibility       // 对话面板
	Popup     *PopupBroker     // 共享交互提示
	Gate      *ControlGate     // 玩家控制闸门
	Tracker   *MilestoneTracker
	Animator  AnimationTrigger // 结束动画
	Reveal    Visibility       // 对话结束后显示的对象
	Scheduler *Scheduler
	Lock      *InteractionLock
}

// DialogueCoordinator 单个可交互对象的对话控制器
//
// 每个 tick 由外部循环调用 OnTick：
//  1. 计算与玩家的距离，更新 inRange
//  2. 仲裁共享提示的归属
//  3. 在范围内且交互键按下时开始/推进对话
//
// 对话结束时按配置选择会话退出方式，只有会话回到 Idle 才解除玩家冻结。
type DialogueCoordinator struct {
	cfg     CoordinatorConfig
	collab  Collaborators
	session *DialogueSession

	inRange bool
	warned  map[string]bool // 每种缺失只记录一次诊断
}

// NewDialogueCoordinator 创建对话协调器
func NewDialogueCoordinator(cfg CoordinatorConfig, collab Collaborators) *DialogueCoordinator {
	if cfg.ActivationRange <= 0 {
		cfg.ActivationRange = DefaultActivationRange
	}
	if cfg.InteractKey == "" {
		cfg.InteractKey = DefaultInteractKey
	}
	cfg.Lines = append([]DialogueLine(nil), cfg.Lines...)

	c := &DialogueCoordinator{
		cfg:     cfg,
		collab:  collab,
		session: NewDialogueSession(cfg.ID, collab.Scheduler),
		warned:  make(map[string]bool),
	}
	c.session.OnEnd(c.endDialogue)
	c.session.OnIdle(c.onSessionIdle)

	if collab.Panel != nil {
		collab.Panel.Hide()
	}

	log.Printf("[DialogueCoordinator] %s (%d) initialized: %d lines, range=%.1f, key=%s",
		cfg.Name, cfg.ID, len(cfg.Lines), cfg.ActivationRange, cfg.InteractKey)
	return c
}

// ID 协调器标识
func (c *DialogueCoordinator) ID() InteractorID {
	return c.cfg.ID
}

// Name 协调器名称
func (c *DialogueCoordinator) Name() string {
	return c.cfg.Name
}

// InteractKey 交互按键
func (c *DialogueCoordinator) InteractKey() string {
	return c.cfg.InteractKey
}

// Position 协调器位置
func (c *DialogueCoordinator) Position() Vec3 {
	return c.cfg.Position
}

// SetPosition 更新协调器位置（NPC 移动时）
func (c *DialogueCoordinator) SetPosition(p Vec3) {
	c.cfg.Position = p
}

// ActivationRange 触发距离
func (c *DialogueCoordinator) ActivationRange() float64 {
	return c.cfg.ActivationRange
}

// InRange 上一个 tick 玩家是否在触发范围内
func (c *DialogueCoordinator) InRange() bool {
	return c.inRange
}

// Session 返回协调器独占的会话（只读使用）
func (c *DialogueCoordinator) Session() *DialogueSession {
	return c.session
}

// OnTick 每个 tick 调用一次
func (c *DialogueCoordinator) OnTick(playerPosition Vec3, interactKeyEdge bool) {
	c.inRange = Distance(playerPosition, c.cfg.Position) <= c.cfg.ActivationRange

	c.handlePopup()
	c.handleInteraction(interactKeyEdge)
}

// NotifyComplete 外部动画完成信号
func (c *DialogueCoordinator) NotifyComplete() {
	state := c.session.State()
	if state != SessionAwaitingAnimation && state != SessionAwaitingHold {
		return
	}
	if err := c.session.ExternalSignal(); err != nil {
		log.Printf("[DialogueCoordinator] %s: %v", c.cfg.Name, err)
	}
}

// handlePopup 共享提示归属
func (c *DialogueCoordinator) handlePopup() {
	broker := c.collab.Popup
	if broker == nil {
		c.missing("popup broker")
		return
	}

	if !c.inRange {
		if broker.IsOwner(c.cfg.ID) {
			broker.Release(c.cfg.ID)
		}
		return
	}

	if c.session.State() != SessionIdle {
		return
	}
	if c.collab.Lock != nil && c.collab.Lock.HeldByOther(c.cfg.ID) {
		return
	}
	broker.RequestOwnership(c.cfg.ID)
}

// handleInteraction 交互键处理，仅在范围内生效
func (c *DialogueCoordinator) handleInteraction(interactKeyEdge bool) {
	if !c.inRange || !interactKeyEdge {
		return
	}

	switch c.session.State() {
	case SessionIdle:
		c.startDialogue()
	case SessionActive:
		c.nextLine()
	default:
		log.Printf("[DialogueCoordinator] %s: interact ignored while %s", c.cfg.Name, c.session.State())
	}
}

func (c *DialogueCoordinator) startDialogue() {
	if c.collab.Lock != nil && c.collab.Lock.HeldByOther(c.cfg.ID) {
		log.Printf("[DialogueCoordinator] %s: another dialogue (%d) is active", c.cfg.Name, c.collab.Lock.Holder())
		return
	}

	if c.collab.Popup != nil {
		c.collab.Popup.HideAll()
	}

	if len(c.cfg.Lines) == 0 {
		c.missing("dialogue lines")
		return
	}

	if c.collab.Lock != nil {
		c.collab.Lock.Acquire(c.cfg.ID)
	}

	c.freezePlayer()

	if !c.session.Start(c.cfg.Lines) {
		c.unfreezePlayer()
		c.releaseLock()
		return
	}

	if c.collab.Panel != nil {
		c.collab.Panel.Show()
	} else {
		c.missing("dialogue panel")
	}

	c.showCurrentLine()
}

func (c *DialogueCoordinator) nextLine() {
	_, ended, err := c.session.Advance()
	if err != nil {
		if errors.Is(err, ErrInvalidState) {
			log.Printf("[DialogueCoordinator] %s: %v", c.cfg.Name, err)
		}
		return
	}
	if !ended {
		c.showCurrentLine()
	}
}

func (c *DialogueCoordinator) showCurrentLine() {
	line, ok := c.session.Current()
	if !ok {
		return
	}
	if c.collab.Text == nil {
		c.missing("text display")
		return
	}
	c.collab.Text.SetSpeaker(line.Speaker)
	c.collab.Text.SetMessage(line.Message)
}

// endDialogue 对话结束处理，返回会话退出方式
func (c *DialogueCoordinator) endDialogue() ExitOptions {
	if c.collab.Text != nil {
		c.collab.Text.SetSpeaker("")
		c.collab.Text.SetMessage("")
	}
	if c.collab.Panel != nil {
		c.collab.Panel.Hide()
	}
	if c.collab.Popup != nil {
		c.collab.Popup.HideAll()
	}
	if c.collab.Reveal != nil {
		c.collab.Reveal.Show()
	}

	c.completeMilestone()

	if !c.tryPlayEndAnimation() {
		return ExitOptions{}
	}
	return ExitOptions{
		HoldSeconds:   c.cfg.EndAnimation.HoldSeconds,
		WaitForSignal: c.cfg.EndAnimation.WaitForSignal,
	}
}

func (c *DialogueCoordinator) completeMilestone() {
	if c.cfg.MilestoneIndex == NoMilestone || c.cfg.MilestoneIndex < 0 {
		return
	}
	tracker := c.collab.Tracker
	if tracker == nil {
		c.missing("milestone tracker")
		return
	}
	if tracker.CurrentIndex() == c.cfg.MilestoneIndex {
		tracker.Complete()
	}
}

// tryPlayEndAnimation 触发结束动画，返回是否真的触发了
func (c *DialogueCoordinator) tryPlayEndAnimation() bool {
	anim := c.cfg.EndAnimation
	if !anim.Enabled {
		return false
	}
	if c.collab.Animator == nil {
		c.missing("animation trigger")
		return false
	}
	if anim.TriggerName == "" {
		return false
	}

	c.collab.Animator.Fire(anim.TriggerName)
	log.Printf("[DialogueCoordinator] %s: fired end animation %q", c.cfg.Name, anim.TriggerName)
	return true
}

func (c *DialogueCoordinator) onSessionIdle() {
	c.unfreezePlayer()
	c.releaseLock()
}

func (c *DialogueCoordinator) freezePlayer() {
	if c.collab.Gate == nil {
		c.missing("control gate")
		return
	}
	c.collab.Gate.Freeze()
}

func (c *DialogueCoordinator) unfreezePlayer() {
	if c.collab.Gate == nil {
		return
	}
	c.collab.Gate.Unfreeze()
}

func (c *DialogueCoordinator) releaseLock() {
	if c.collab.Lock != nil {
		c.collab.Lock.Release(c.cfg.ID)
	}
}

func (c *DialogueCoordinator) missing(what string) {
	if c.warned[what] {
		return
	}
	c.warned[what] = true
	log.Printf("[DialogueCoordinator] %s: %s absent, skipping: %v", c.cfg.Name, what, ErrMissingCollaborator)
}
