package interaction

// InteractionLock 全局交互锁
// 显式保证任一时刻最多一个对话会话处于非 Idle 状态，
// 不再依赖关卡布局（触发范围不重叠）来间接保证
type InteractionLock struct {
	holder InteractorID
}

// NewInteractionLock 创建交互锁
func NewInteractionLock() *InteractionLock {
	return &InteractionLock{}
}

// Acquire 获取锁，持有者重复获取也返回 true
func (l *InteractionLock) Acquire(id InteractorID) bool {
	if id == NoInteractor {
		return false
	}
	if l.holder != NoInteractor && l.holder != id {
		return false
	}
	l.holder = id
	return true
}

// Release 释放锁，非持有者调用为空操作
func (l *InteractionLock) Release(id InteractorID) {
	if l.holder == id {
		l.holder = NoInteractor
	}
}

// Holder 返回当前持有者
func (l *InteractionLock) Holder() InteractorID {
	return l.holder
}

// HeldByOther 锁是否被 id 以外的交互者持有
func (l *InteractionLock) HeldByOther(id InteractorID) bool {
	return l.holder != NoInteractor && l.holder != id
}
