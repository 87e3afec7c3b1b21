package interaction

import (
	"errors"
	"fmt"
	"testing"
)

// TestSessionVisitsAllLines 任意非空台词序列都按顺序访问，第 len 次 Advance 回到 Idle
func TestSessionVisitsAllLines(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("%d句", n), func(t *testing.T) {
			lines := make([]DialogueLine, n)
			for i := range lines {
				lines[i] = DialogueLine{Speaker: "NPC", Message: fmt.Sprintf("line-%d", i)}
			}

			s := NewDialogueSession(1, NewScheduler())
			if !s.Start(lines) {
				t.Fatal("Start() returned false for non-empty lines")
			}

			first, ok := s.Current()
			if !ok || first.Message != "line-0" {
				t.Fatalf("Current() after Start = %+v, %v", first, ok)
			}

			for i := 1; i < n; i++ {
				line, ended, err := s.Advance()
				if err != nil || ended {
					t.Fatalf("Advance() #%d: ended=%v err=%v", i, ended, err)
				}
				if line.Message != fmt.Sprintf("line-%d", i) {
					t.Errorf("Advance() #%d line = %q", i, line.Message)
				}
				if s.State() != SessionActive {
					t.Errorf("state after Advance #%d = %s, want Active", i, s.State())
				}
			}

			_, ended, err := s.Advance()
			if err != nil || !ended {
				t.Fatalf("final Advance(): ended=%v err=%v", ended, err)
			}
			if s.State() != SessionIdle {
				t.Errorf("state after final Advance = %s, want Idle", s.State())
			}
		})
	}
}

// TestSessionStartEmpty 空台词不开始对话
func TestSessionStartEmpty(t *testing.T) {
	s := NewDialogueSession(1, nil)

	if s.Start(nil) {
		t.Error("Start(nil) should return false")
	}
	if s.Start([]DialogueLine{}) {
		t.Error("Start(empty) should return false")
	}
	if s.State() != SessionIdle {
		t.Errorf("state = %s, want Idle", s.State())
	}
}

// TestSessionAdvanceWhileIdle Idle 时推进是防御性空操作
func TestSessionAdvanceWhileIdle(t *testing.T) {
	s := NewDialogueSession(1, nil)

	_, ended, err := s.Advance()
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Advance() err = %v, want ErrInvalidState", err)
	}
	if ended {
		t.Error("Advance() while Idle should not report ended")
	}
	if s.State() != SessionIdle {
		t.Errorf("state = %s, want Idle", s.State())
	}
}

// TestSessionExitRouting 结束方式路由
func TestSessionExitRouting(t *testing.T) {
	tests := []struct {
		name string
		opts ExitOptions
		want SessionState
	}{
		{name: "直接结束", opts: ExitOptions{}, want: SessionIdle},
		{name: "保持时长", opts: ExitOptions{HoldSeconds: 1.5}, want: SessionAwaitingHold},
		{name: "等待外部信号", opts: ExitOptions{WaitForSignal: true}, want: SessionAwaitingAnimation},
		{name: "信号优先于时长", opts: ExitOptions{HoldSeconds: 2, WaitForSignal: true}, want: SessionAwaitingAnimation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDialogueSession(1, NewScheduler())
			s.OnEnd(func() ExitOptions { return tt.opts })
			s.Start([]DialogueLine{{Speaker: "A", Message: "x"}})

			if _, ended, err := s.Advance(); !ended || err != nil {
				t.Fatalf("Advance(): ended=%v err=%v", ended, err)
			}
			if s.State() != tt.want {
				t.Errorf("state = %s, want %s", s.State(), tt.want)
			}
		})
	}
}

// TestSessionHoldElapses 保持时长到期后回到 Idle 并触发回调
func TestSessionHoldElapses(t *testing.T) {
	sched := NewScheduler()
	s := NewDialogueSession(7, sched)
	idleCalls := 0
	s.OnIdle(func() { idleCalls++ })
	s.OnEnd(func() ExitOptions { return ExitOptions{HoldSeconds: 1} })

	s.Start([]DialogueLine{{Message: "x"}})
	s.Advance()

	sched.Update(0.5)
	if s.State() != SessionAwaitingHold {
		t.Fatalf("state after 0.5s = %s, want AwaitingHold", s.State())
	}
	if idleCalls != 0 {
		t.Errorf("OnIdle called %d times before hold elapsed", idleCalls)
	}

	sched.Update(0.5)
	if s.State() != SessionIdle {
		t.Errorf("state after 1.0s = %s, want Idle", s.State())
	}
	if idleCalls != 1 {
		t.Errorf("OnIdle called %d times, want 1", idleCalls)
	}
}

// TestSessionStartCancelsPendingHold 等待期间重新开始会取消挂起的保持
func TestSessionStartCancelsPendingHold(t *testing.T) {
	sched := NewScheduler()
	s := NewDialogueSession(3, sched)
	s.OnEnd(func() ExitOptions { return ExitOptions{HoldSeconds: 1} })

	s.Start([]DialogueLine{{Message: "a"}})
	s.Advance()
	if !sched.Pending(3, holdKind) {
		t.Fatal("hold should be pending")
	}

	if !s.Start([]DialogueLine{{Message: "b"}, {Message: "c"}}) {
		t.Fatal("Start() while AwaitingHold should succeed")
	}
	if sched.Pending(3, holdKind) {
		t.Error("pending hold should be cancelled by Start()")
	}

	sched.Update(5)
	if s.State() != SessionActive {
		t.Errorf("state = %s, want Active (cancelled hold must not fire)", s.State())
	}
}

// TestSessionExternalSignal 外部信号
func TestSessionExternalSignal(t *testing.T) {
	s := NewDialogueSession(1, NewScheduler())

	if err := s.ExternalSignal(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("ExternalSignal() while Idle err = %v, want ErrInvalidState", err)
	}

	s.OnEnd(func() ExitOptions { return ExitOptions{WaitForSignal: true} })
	s.Start([]DialogueLine{{Message: "x"}})
	s.Advance()

	if err := s.ExternalSignal(); err != nil {
		t.Fatalf("ExternalSignal() err = %v", err)
	}
	if s.State() != SessionIdle {
		t.Errorf("state = %s, want Idle", s.State())
	}
}

// TestSessionHoldWithoutScheduler 没有调度器时保持时长退化为立即结束
func TestSessionHoldWithoutScheduler(t *testing.T) {
	s := NewDialogueSession(1, nil)
	s.OnEnd(func() ExitOptions { return ExitOptions{HoldSeconds: 3} })
	s.Start([]DialogueLine{{Message: "x"}})
	s.Advance()

	if s.State() != SessionIdle {
		t.Errorf("state = %s, want Idle", s.State())
	}
}

func TestSessionStateString(t *testing.T) {
	tests := map[SessionState]string{
		SessionIdle:              "Idle",
		SessionActive:            "Active",
		SessionAwaitingAnimation: "AwaitingAnimation",
		SessionAwaitingHold:      "AwaitingHold",
		SessionState(99):         "Unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("SessionState(%d).String() = %q, want %q", state, got, want)
		}
	}
}
