package input

import "strings"

// Scripted 由程序写入的按键状态，用于终端驱动和测试
//
// Press 记录一次按下边沿，边沿在下一次 EndTick 时清除；
// Hold/Release 控制按住状态。按键名不区分大小写。
type Scripted struct {
	edges map[string]bool
	held  map[string]bool
}

// NewScripted 创建空的按键状态
func NewScripted() *Scripted {
	return &Scripted{
		edges: make(map[string]bool),
		held:  make(map[string]bool),
	}
}

// Press 记录一次按下
func (s *Scripted) Press(key string) {
	s.edges[normalize(key)] = true
}

// Hold 开始按住
func (s *Scripted) Hold(key string) {
	s.held[normalize(key)] = true
}

// Release 松开
func (s *Scripted) Release(key string) {
	delete(s.held, normalize(key))
}

// ReleaseAll 松开所有按键
func (s *Scripted) ReleaseAll() {
	clear(s.held)
}

// KeyEdge 实现 interaction.InputSource
func (s *Scripted) KeyEdge(key string) bool {
	return s.edges[normalize(key)]
}

// KeyHeld 按键是否按住
func (s *Scripted) KeyHeld(key string) bool {
	k := normalize(key)
	return s.held[k] || s.edges[k]
}

// EndTick 清除本帧的按下边沿
func (s *Scripted) EndTick() {
	clear(s.edges)
}

func normalize(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
