package interaction

// fakeText 记录最近一次显示的说话人和台词
type fakeText struct {
	speaker  string
	message  string
	messages []string
}

func (f *fakeText) SetSpeaker(text string) { f.speaker = text }

func (f *fakeText) SetMessage(text string) {
	f.message = text
	f.messages = append(f.messages, text)
}

// fakeAnimator 记录触发过的动画
type fakeAnimator struct {
	fired []string
}

func (f *fakeAnimator) Fire(triggerName string) { f.fired = append(f.fired, triggerName) }

// fakeLoader 记录场景加载请求
type fakeLoader struct {
	requests []string
}

func (f *fakeLoader) RequestLoad(sceneID string) { f.requests = append(f.requests, sceneID) }

func twoLines() []DialogueLine {
	return []DialogueLine{
		{Speaker: "Bob", Message: "Hi"},
		{Speaker: "Bob", Message: "Bye"},
	}
}

// testRig 一套完整的协调器依赖
type testRig struct {
	text      *fakeText
	panel     *Flag
	popup     *Flag
	broker    *PopupBroker
	gate      *ControlGate
	movement  *Flag
	input     *Flag
	tracker   *MilestoneTracker
	animator  *fakeAnimator
	reveal    *Flag
	scheduler *Scheduler
	lock      *InteractionLock
}

func newTestRig(milestones ...string) *testRig {
	r := &testRig{
		text:      &fakeText{},
		panel:     NewFlag(false),
		popup:     NewFlag(false),
		movement:  NewFlag(true),
		input:     NewFlag(true),
		animator:  &fakeAnimator{},
		reveal:    NewFlag(false),
		scheduler: NewScheduler(),
		lock:      NewInteractionLock(),
	}
	r.broker = NewPopupBroker(r.popup)
	r.gate = NewControlGate()
	r.gate.Register(SubsystemMovement, r.movement)
	r.gate.Register(SubsystemInput, r.input)
	r.tracker = NewMilestoneTracker(milestones, nil)
	return r
}

func (r *testRig) collaborators() Collaborators {
	return Collaborators{
		Text:      r.text,
		Panel:     r.panel,
		Popup:     r.broker,
		Gate:      r.gate,
		Tracker:   r.tracker,
		Animator:  r.animator,
		Reveal:    r.reveal,
		Scheduler: r.scheduler,
		Lock:      r.lock,
	}
}

var (
	near = Vec3{X: 1}
	far  = Vec3{X: 100}
)
