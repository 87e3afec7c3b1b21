// Package input 把按键名映射到 ebiten 键盘状态
//
// 交互核心只认识按键名（"M"、"F"、"Enter"），这里负责把它们翻译成
// ebiten.Key 并区分按下边沿和按住状态。
package input

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source 按键状态源
// KeyEdge 在一次按下中只返回一次 true，KeyHeld 在按住期间一直返回 true
type Source interface {
	KeyEdge(key string) bool
	KeyHeld(key string) bool
}

var keyNames = map[string]ebiten.Key{
	"ENTER":  ebiten.KeyEnter,
	"ESCAPE": ebiten.KeyEscape,
	"ESC":    ebiten.KeyEscape,
	"SPACE":  ebiten.KeySpace,
	"TAB":    ebiten.KeyTab,
	"UP":     ebiten.KeyArrowUp,
	"DOWN":   ebiten.KeyArrowDown,
	"LEFT":   ebiten.KeyArrowLeft,
	"RIGHT":  ebiten.KeyArrowRight,
	"F1":     ebiten.KeyF1,
	"F2":     ebiten.KeyF2,
	"F3":     ebiten.KeyF3,
}

// LookupKey 按名称查找 ebiten.Key，名称不区分大小写
// 单个字母和数字直接映射到对应按键
func LookupKey(name string) (ebiten.Key, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if key, ok := keyNames[upper]; ok {
		return key, true
	}
	if len(upper) == 1 {
		c := upper[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return ebiten.KeyA + ebiten.Key(c-'A'), true
		case c >= '0' && c <= '9':
			return ebiten.KeyDigit0 + ebiten.Key(c-'0'), true
		}
	}
	return 0, false
}

// Keyboard 基于 ebiten 的键盘输入
// 只能在 ebiten 的 Update 中使用
type Keyboard struct {
	unknown map[string]bool
}

// NewKeyboard 创建键盘输入
func NewKeyboard() *Keyboard {
	return &Keyboard{unknown: make(map[string]bool)}
}

// KeyEdge 实现 interaction.InputSource
func (k *Keyboard) KeyEdge(name string) bool {
	key, ok := k.lookup(name)
	return ok && inpututil.IsKeyJustPressed(key)
}

// KeyHeld 按键是否处于按下状态
func (k *Keyboard) KeyHeld(name string) bool {
	key, ok := k.lookup(name)
	return ok && ebiten.IsKeyPressed(key)
}

func (k *Keyboard) lookup(name string) (ebiten.Key, bool) {
	key, ok := LookupKey(name)
	if !ok && !k.unknown[name] {
		k.unknown[name] = true
		log.Printf("[Keyboard] 未知按键名: %q", name)
	}
	return key, ok
}
