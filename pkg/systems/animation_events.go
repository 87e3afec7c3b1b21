package systems

import (
	"log"

	"github.com/decker502/stonekeep/pkg/interaction"
)

const animationEventKind = "animation_event"

// ScheduledAnimator 没有真实动画播放时的动画触发器
//
// Fire 按触发器名查到动画时长，到期后调用完成回调，
// 相当于动画时间轴末尾的动画事件。未配置时长的触发器不会回报完成。
type ScheduledAnimator struct {
	owner      interaction.InteractorID
	scheduler  *interaction.Scheduler
	durations  map[string]float64
	onComplete func()
	fired      []string
}

// NewScheduledAnimator 创建动画触发器
func NewScheduledAnimator(owner interaction.InteractorID, scheduler *interaction.Scheduler, durations map[string]float64) *ScheduledAnimator {
	return &ScheduledAnimator{
		owner:     owner,
		scheduler: scheduler,
		durations: durations,
	}
}

// OnComplete 设置动画完成回调（通常是 DialogueCoordinator.NotifyComplete）
func (a *ScheduledAnimator) OnComplete(fn func()) {
	a.onComplete = fn
}

// Fire 实现 interaction.AnimationTrigger
func (a *ScheduledAnimator) Fire(triggerName string) {
	a.fired = append(a.fired, triggerName)

	duration, ok := a.durations[triggerName]
	if !ok {
		log.Printf("[ScheduledAnimator] %q 没有配置时长，不会回报完成", triggerName)
		return
	}
	if a.scheduler == nil || a.onComplete == nil {
		return
	}

	a.scheduler.After(a.owner, animationEventKind, duration, func() {
		log.Printf("[ScheduledAnimator] %q 播放完成", triggerName)
		a.onComplete()
	})
}

// Fired 已触发的动画名称（按触发顺序）
func (a *ScheduledAnimator) Fired() []string {
	return a.fired
}
