package interaction

import "log"

// PopupBroker 共享交互提示（"按 M 对话"）的唯一归属仲裁
//
// 进程内只有一个提示，任一时刻最多一个交互者拥有它；
// 拥有者只是一个标识，不持有交互者的生命周期。
type PopupBroker struct {
	popup   Visibility // 可为 nil（无界面）
	owner   InteractorID
	visible bool
}

// NewPopupBroker 创建提示仲裁器，初始状态为：无拥有者、隐藏
func NewPopupBroker(popup Visibility) *PopupBroker {
	b := &PopupBroker{popup: popup}
	b.hide()
	return b
}

// RequestOwnership 请求提示归属
// 只有在没有拥有者或 id 已经是拥有者时成功，成功后显示提示
func (b *PopupBroker) RequestOwnership(id InteractorID) bool {
	if id == NoInteractor {
		return false
	}
	if b.owner != NoInteractor && b.owner != id {
		return false
	}

	if b.owner != id {
		log.Printf("[PopupBroker] Ownership granted to %d", id)
	}
	b.owner = id
	b.show()
	return true
}

// Release 释放归属，id 不是拥有者时为空操作
func (b *PopupBroker) Release(id InteractorID) {
	if id == NoInteractor || b.owner != id {
		return
	}

	b.owner = NoInteractor
	b.hide()
	log.Printf("[PopupBroker] Ownership released by %d", id)
}

// HideAll 全局隐藏提示并清除拥有者
func (b *PopupBroker) HideAll() {
	b.owner = NoInteractor
	b.hide()
}

// IsOwner 查询 id 是否为当前拥有者
func (b *PopupBroker) IsOwner(id InteractorID) bool {
	return id != NoInteractor && b.owner == id
}

// Owner 返回当前拥有者，没有时返回 NoInteractor
func (b *PopupBroker) Owner() InteractorID {
	return b.owner
}

// Visible 提示是否可见
func (b *PopupBroker) Visible() bool {
	return b.visible
}

func (b *PopupBroker) show() {
	b.visible = true
	if b.popup != nil {
		b.popup.Show()
	}
}

func (b *PopupBroker) hide() {
	b.visible = false
	if b.popup != nil {
		b.popup.Hide()
	}
}
