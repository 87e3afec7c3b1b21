package interaction

import "errors"

var (
	// ErrMissingCollaborator 必需的引用（玩家、UI 面板、台词等）缺失
	// 总是在本地恢复：跳过受影响的动作并记录诊断，不会中断 tick
	ErrMissingCollaborator = errors.New("missing collaborator")

	// ErrInvalidState 当前状态下不允许的状态转换（例如 Idle 时调用 Advance）
	// 作为防御性空操作处理
	ErrInvalidState = errors.New("invalid state transition")
)
