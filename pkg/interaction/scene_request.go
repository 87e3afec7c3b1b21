package interaction

import "log"

// SceneTransitionRequest 场景切换请求
// 由目标清单耗尽或 UI 发出，由外部场景加载器消费
type SceneTransitionRequest struct {
	SceneID string
}

// Send 把请求交给加载器，加载器缺失时返回 false
func (r SceneTransitionRequest) Send(loader SceneLoader) bool {
	if loader == nil {
		log.Printf("[SceneTransition] No scene loader for %q: %v", r.SceneID, ErrMissingCollaborator)
		return false
	}
	log.Printf("[SceneTransition] Requesting scene %q", r.SceneID)
	loader.RequestLoad(r.SceneID)
	return true
}

// ConnectMilestonesToScene 清单耗尽时请求加载 sceneID
func ConnectMilestonesToScene(tracker *MilestoneTracker, loader SceneLoader, sceneID string) bool {
	if tracker == nil || loader == nil || sceneID == "" {
		log.Printf("[SceneTransition] Cannot connect milestones to scene %q: %v", sceneID, ErrMissingCollaborator)
		return false
	}

	tracker.OnExhausted(func() {
		SceneTransitionRequest{SceneID: sceneID}.Send(loader)
	})
	return true
}
