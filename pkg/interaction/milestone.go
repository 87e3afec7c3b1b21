package interaction

import (
	"fmt"
	"log"
)

// 目标文本
const (
	objectiveFormat        = "Objective:\n%s"
	allObjectivesCompleted = "All objectives completed!"
)

// MilestoneTracker 有序目标清单
//
// currentIndex 只会单调递增，每次 Complete 恰好加 1；
// 当 currentIndex == len(milestones) 时清单耗尽，
// 完成通知只在进入耗尽状态的那一次调用时触发。
type MilestoneTracker struct {
	milestones  []string
	index       int
	display     TextDisplay // 可为 nil
	onExhausted []func()
}

// NewMilestoneTracker 创建目标清单并立即渲染当前目标
func NewMilestoneTracker(milestones []string, display TextDisplay) *MilestoneTracker {
	t := &MilestoneTracker{
		milestones: append([]string(nil), milestones...),
		display:    display,
	}
	t.Render()
	return t
}

// OnExhausted 注册清单耗尽回调
func (t *MilestoneTracker) OnExhausted(fn func()) {
	if fn != nil {
		t.onExhausted = append(t.onExhausted, fn)
	}
}

// Complete 完成当前目标
// 已耗尽时为空操作并返回 false
func (t *MilestoneTracker) Complete() bool {
	if t.Exhausted() {
		log.Printf("[MilestoneTracker] Complete ignored: already exhausted")
		return false
	}

	t.index++
	t.Render()
	log.Printf("[MilestoneTracker] Milestone %d/%d completed", t.index, len(t.milestones))

	if t.Exhausted() {
		log.Printf("[MilestoneTracker] All milestones completed")
		for _, fn := range t.onExhausted {
			fn()
		}
	}
	return true
}

// CurrentIndex 当前目标索引（不修改状态）
func (t *MilestoneTracker) CurrentIndex() int {
	return t.index
}

// Len 目标数量
func (t *MilestoneTracker) Len() int {
	return len(t.milestones)
}

// Current 返回当前目标文本，耗尽时返回 false
func (t *MilestoneTracker) Current() (string, bool) {
	if t.Exhausted() {
		return "", false
	}
	return t.milestones[t.index], true
}

// Exhausted 是否所有目标都已完成
func (t *MilestoneTracker) Exhausted() bool {
	return t.index >= len(t.milestones)
}

// Text 当前应显示的目标文本
func (t *MilestoneTracker) Text() string {
	if current, ok := t.Current(); ok {
		return fmt.Sprintf(objectiveFormat, current)
	}
	return allObjectivesCompleted
}

// Render 把当前目标渲染到显示面板
func (t *MilestoneTracker) Render() {
	if t.display == nil {
		return
	}
	t.display.SetMessage(t.Text())
}

// Restore 从存档恢复进度（越界时被截断），不会触发完成通知
func (t *MilestoneTracker) Restore(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(t.milestones) {
		index = len(t.milestones)
	}
	t.index = index
	t.Render()
}
