package interaction

import (
	"log"
	"sort"
)

// ScheduleKey 延时续体的键：同一拥有者的同一种延时最多只有一个
type ScheduleKey struct {
	Owner InteractorID
	Kind  string
}

type pendingCall struct {
	key      ScheduleKey
	deadline float64
	seq      uint64
	fn       func()
}

// Scheduler 协作式延时续体调度器
//
// 取代协程 + WaitForSeconds：
//   - After 注册一个在将来某个 tick 恢复的续体
//   - 同一 (owner, kind) 再次注册会取消并替换旧的续体
//   - 被取消的续体永远不会触发
//
// 调度器不持有锁，只能在 tick 线程上使用。
type Scheduler struct {
	now     float64
	seq     uint64
	pending map[ScheduleKey]*pendingCall
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[ScheduleKey]*pendingCall),
	}
}

// Now 返回调度器累计的时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// After 在 delay 秒后执行 fn
// 如果同一 (owner, kind) 已有待执行的续体，旧续体被取消
func (s *Scheduler) After(owner InteractorID, kind string, delay float64, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}

	key := ScheduleKey{Owner: owner, Kind: kind}
	if _, exists := s.pending[key]; exists {
		log.Printf("[Scheduler] Replacing pending %q for owner %d", kind, owner)
	}

	s.seq++
	s.pending[key] = &pendingCall{
		key:      key,
		deadline: s.now + delay,
		seq:      s.seq,
		fn:       fn,
	}
}

// Cancel 取消待执行的续体，返回是否真的取消了某个续体
func (s *Scheduler) Cancel(owner InteractorID, kind string) bool {
	key := ScheduleKey{Owner: owner, Kind: kind}
	if _, exists := s.pending[key]; !exists {
		return false
	}
	delete(s.pending, key)
	return true
}

// Pending 是否存在待执行的续体
func (s *Scheduler) Pending(owner InteractorID, kind string) bool {
	_, exists := s.pending[ScheduleKey{Owner: owner, Kind: kind}]
	return exists
}

// Len 返回待执行续体数量
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Update 推进时间并按截止时间顺序触发到期的续体
// 在本次 Update 中新注册的续体最早在下一次 Update 触发
func (s *Scheduler) Update(dt float64) {
	s.now += dt

	due := make([]*pendingCall, 0)
	for _, call := range s.pending {
		if call.deadline <= s.now {
			due = append(due, call)
		}
	}
	if len(due) == 0 {
		return
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})

	for _, call := range due {
		// 前一个续体可能已经取消或替换了这个续体
		if current, ok := s.pending[call.key]; !ok || current != call {
			continue
		}
		delete(s.pending, call.key)
		call.fn()
	}
}
