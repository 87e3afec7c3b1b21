package interaction

import (
	"iter"
	"unicode/utf8"
)

// DefaultCharsPerSecond 打字效果默认速度
const DefaultCharsPerSecond = 40.0

// Typewriter 打字机效果
//
// 包装一个 TextDisplay：SetMessage 会取消正在进行的打字并从头开始，
// Update 按 CharsPerSecond 从 Characters 序列中逐帧取出前缀显示。
// 字符按 rune 计数，中文不会被截断。
type Typewriter struct {
	target         TextDisplay
	charsPerSecond float64

	full    string
	total   int // full 的 rune 数
	shown   string
	count   int // shown 的 rune 数
	elapsed float64
	typing  bool

	next func() (string, bool)
	stop func()
}

// NewTypewriter 创建打字机效果，charsPerSecond <= 0 表示立即显示全部文本
func NewTypewriter(target TextDisplay, charsPerSecond float64) *Typewriter {
	return &Typewriter{
		target:         target,
		charsPerSecond: charsPerSecond,
	}
}

// SetSpeaker 直接显示说话人
func (t *Typewriter) SetSpeaker(text string) {
	if t.target != nil {
		t.target.SetSpeaker(text)
	}
}

// SetMessage 开始打字显示 text
func (t *Typewriter) SetMessage(text string) {
	t.release()
	t.full = text
	t.total = utf8.RuneCountInString(text)
	t.shown = ""
	t.count = 0
	t.elapsed = 0
	t.typing = t.total > 0 && t.charsPerSecond > 0

	if !t.typing {
		t.finish()
		return
	}
	t.next, t.stop = iter.Pull(Characters(text))
	t.emit("")
}

// Update 推进打字效果
func (t *Typewriter) Update(dt float64) {
	if !t.typing {
		return
	}

	t.elapsed += dt
	want := min(int(t.elapsed*t.charsPerSecond), t.total)
	if want == t.count {
		return
	}
	for t.count < want {
		prefix, ok := t.next()
		if !ok {
			break
		}
		t.shown = prefix
		t.count++
	}
	if t.count >= t.total {
		t.finish()
		return
	}
	t.emit(t.shown)
}

// Skip 立即显示全部文本
func (t *Typewriter) Skip() {
	if !t.typing {
		return
	}
	t.finish()
}

// Typing 是否正在打字
func (t *Typewriter) Typing() bool {
	return t.typing
}

// Shown 当前已显示的文本
func (t *Typewriter) Shown() string {
	return t.shown
}

func (t *Typewriter) finish() {
	t.release()
	t.typing = false
	t.shown = t.full
	t.count = t.total
	t.emit(t.full)
}

// release 结束上一条消息的前缀序列
func (t *Typewriter) release() {
	if t.stop != nil {
		t.stop()
	}
	t.next, t.stop = nil, nil
}

func (t *Typewriter) emit(text string) {
	if t.target != nil {
		t.target.SetMessage(text)
	}
}

// Characters 以惰性序列产出 text 的逐字前缀
// "你好" -> "你", "你好"
func Characters(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(text)
		for i := 1; i <= len(runes); i++ {
			if !yield(string(runes[:i])) {
				return
			}
		}
	}
}
