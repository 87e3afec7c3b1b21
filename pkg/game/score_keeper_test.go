package game

import "testing"

type textSink struct {
	messages []string
}

func (s *textSink) SetSpeaker(string) {}
func (s *textSink) SetMessage(text string) { s.messages = append(s.messages, text) }

// TestScoreKeeper 测试分数累加与显示
func TestScoreKeeper(t *testing.T) {
	sink := &textSink{}
	sk := NewScoreKeeper(0, sink)

	if len(sink.messages) != 1 || sink.messages[0] != "Score: 0" {
		t.Fatalf("Expected initial render 'Score: 0', got %v", sink.messages)
	}

	sk.Add(1)
	sk.Add(1)

	if sk.Score() != 2 {
		t.Errorf("Score() = %d, want 2", sk.Score())
	}
	if last := sink.messages[len(sink.messages)-1]; last != "Score: 2" {
		t.Errorf("Expected 'Score: 2', got %q", last)
	}
}

// TestScoreKeeperNilDisplay 测试没有显示面板
func TestScoreKeeperNilDisplay(t *testing.T) {
	sk := NewScoreKeeper(5, nil)
	sk.Add(3)
	if sk.Text() != "Score: 8" {
		t.Errorf("Text() = %q, want 'Score: 8'", sk.Text())
	}
}
