package interaction

import (
	"fmt"
	"log"
)

// SessionState 对话会话状态
type SessionState int

const (
	// SessionIdle 没有对话
	SessionIdle SessionState = iota

	// SessionActive 正在逐句显示台词
	SessionActive

	// SessionAwaitingAnimation 台词结束，等待外部"动画完成"信号
	SessionAwaitingAnimation

	// SessionAwaitingHold 台词结束，等待固定时长后结束
	SessionAwaitingHold
)

// String 返回 SessionState 的字符串表示
func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "Idle"
	case SessionActive:
		return "Active"
	case SessionAwaitingAnimation:
		return "AwaitingAnimation"
	case SessionAwaitingHold:
		return "AwaitingHold"
	default:
		return "Unknown"
	}
}

// holdKind 结束保持延时在调度器中的类型名
const holdKind = "dialogue_hold"

// ExitOptions 对话结束后的退出方式
type ExitOptions struct {
	HoldSeconds   float64 // > 0 时进入 AwaitingHold
	WaitForSignal bool    // true 时进入 AwaitingAnimation（优先于 HoldSeconds）
}

// DialogueSession 单个 NPC 对话的状态机
//
// 状态转换：
//
//	Idle --Start(lines)--> Active
//	Active --Advance--> Active                （还有下一句）
//	Active --Advance--> 结束处理 --> Idle / AwaitingAnimation / AwaitingHold
//	AwaitingAnimation --ExternalSignal--> Idle
//	AwaitingHold --HoldElapsed--> Idle        （由调度器在延时到期后调用）
//
// 会话由唯一一个 DialogueCoordinator 独占，不共享。
type DialogueSession struct {
	owner     InteractorID
	scheduler *Scheduler // 可为 nil，此时保持时长退化为立即结束

	state SessionState
	index int
	lines []DialogueLine

	onEnd  func() ExitOptions
	onIdle func()
}

// NewDialogueSession 创建空闲会话
func NewDialogueSession(owner InteractorID, scheduler *Scheduler) *DialogueSession {
	return &DialogueSession{
		owner:     owner,
		scheduler: scheduler,
		state:     SessionIdle,
	}
}

// OnEnd 注册结束处理：在最后一句之后调用，返回值决定退出方式
func (s *DialogueSession) OnEnd(fn func() ExitOptions) {
	s.onEnd = fn
}

// OnIdle 注册回到 Idle 的回调（从非 Idle 状态进入 Idle 时调用）
func (s *DialogueSession) OnIdle(fn func()) {
	s.onIdle = fn
}

// State 当前状态
func (s *DialogueSession) State() SessionState {
	return s.state
}

// Index 当前台词索引
func (s *DialogueSession) Index() int {
	return s.index
}

// Len 台词数量
func (s *DialogueSession) Len() int {
	return len(s.lines)
}

// Current 当前台词，仅 Active 状态下有效
func (s *DialogueSession) Current() (DialogueLine, bool) {
	if s.state != SessionActive || s.index >= len(s.lines) {
		return DialogueLine{}, false
	}
	return s.lines[s.index], true
}

// Start 开始对话
// lines 为空时为空操作并返回 false；
// 处于 AwaitingHold/AwaitingAnimation 时，挂起的等待被取消并覆盖
func (s *DialogueSession) Start(lines []DialogueLine) bool {
	if len(lines) == 0 {
		return false
	}

	switch s.state {
	case SessionActive:
		log.Printf("[DialogueSession] Owner %d: Start ignored while Active", s.owner)
		return false
	case SessionAwaitingHold, SessionAwaitingAnimation:
		log.Printf("[DialogueSession] Owner %d: Start overrides pending %s", s.owner, s.state)
		s.cancelHold()
	}

	s.lines = append([]DialogueLine(nil), lines...)
	s.index = 0
	s.state = SessionActive

	log.Printf("[DialogueSession] Owner %d: %s → Active, %d lines", s.owner, SessionIdle, len(s.lines))
	return true
}

// Advance 推进到下一句
// 返回下一句台词；最后一句之后返回 ended=true 并执行结束处理
func (s *DialogueSession) Advance() (line DialogueLine, ended bool, err error) {
	if s.state != SessionActive {
		return DialogueLine{}, false, fmt.Errorf("advance while %s: %w", s.state, ErrInvalidState)
	}

	if s.index+1 < len(s.lines) {
		s.index++
		return s.lines[s.index], false, nil
	}

	opts := ExitOptions{}
	if s.onEnd != nil {
		opts = s.onEnd()
	}
	if err := s.EndDueToAnimation(opts); err != nil {
		return DialogueLine{}, true, err
	}
	return DialogueLine{}, true, nil
}

// EndDueToAnimation 以指定方式退出 Active
func (s *DialogueSession) EndDueToAnimation(opts ExitOptions) error {
	if s.state != SessionActive {
		return fmt.Errorf("end while %s: %w", s.state, ErrInvalidState)
	}

	switch {
	case opts.WaitForSignal:
		s.state = SessionAwaitingAnimation
		log.Printf("[DialogueSession] Owner %d: Active → AwaitingAnimation", s.owner)

	case opts.HoldSeconds > 0 && s.scheduler != nil:
		s.state = SessionAwaitingHold
		s.scheduler.After(s.owner, holdKind, opts.HoldSeconds, func() {
			if err := s.HoldElapsed(); err != nil {
				log.Printf("[DialogueSession] Owner %d: %v", s.owner, err)
			}
		})
		log.Printf("[DialogueSession] Owner %d: Active → AwaitingHold (%.2fs)", s.owner, opts.HoldSeconds)

	case opts.HoldSeconds > 0:
		log.Printf("[DialogueSession] Owner %d: no scheduler for hold: %v", s.owner, ErrMissingCollaborator)
		s.toIdle()

	default:
		s.toIdle()
	}
	return nil
}

// ExternalSignal 外部动画完成信号
// AwaitingAnimation → Idle；AwaitingHold 时提前结束保持
func (s *DialogueSession) ExternalSignal() error {
	switch s.state {
	case SessionAwaitingAnimation, SessionAwaitingHold:
		s.cancelHold()
		s.toIdle()
		return nil
	default:
		return fmt.Errorf("external signal while %s: %w", s.state, ErrInvalidState)
	}
}

// HoldElapsed 保持时长到期
func (s *DialogueSession) HoldElapsed() error {
	if s.state != SessionAwaitingHold {
		return fmt.Errorf("hold elapsed while %s: %w", s.state, ErrInvalidState)
	}
	s.toIdle()
	return nil
}

func (s *DialogueSession) cancelHold() {
	if s.scheduler != nil {
		s.scheduler.Cancel(s.owner, holdKind)
	}
}

func (s *DialogueSession) toIdle() {
	prev := s.state
	s.state = SessionIdle
	s.index = 0
	s.lines = nil

	log.Printf("[DialogueSession] Owner %d: %s → Idle", s.owner, prev)

	if prev != SessionIdle && s.onIdle != nil {
		s.onIdle()
	}
}
