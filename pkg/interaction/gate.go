package interaction

import "log"

// 玩家子系统名称
const (
	SubsystemMovement     = "movement"      // 角色移动
	SubsystemInput        = "input"         // 移动/视角输入
	SubsystemThirdPerson  = "third_person"  // 第三人称控制器
	SubsystemFirstPerson  = "first_person"  // 第一人称控制器
	SubsystemCameraSwitch = "camera_switch" // 镜头切换按键
)

// Subsystem 可被冻结的玩家子系统
type Subsystem interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

type gatedSubsystem struct {
	name       string
	subsystem  Subsystem
	wasEnabled bool
}

// ControlGate 玩家控制闸门
//
// Freeze 记录每个子系统当前的启用状态后强制禁用；
// Unfreeze 只恢复冻结前处于启用状态、且目前仍处于禁用状态的子系统，
// 不会强行启用冻结前就已被其他原因禁用的子系统。
//
// 同一时刻最多只有一个活跃对话会调用 Freeze/Unfreeze（见 InteractionLock）。
type ControlGate struct {
	subsystems []*gatedSubsystem
	frozen     bool
}

// NewControlGate 创建控制闸门
func NewControlGate() *ControlGate {
	return &ControlGate{
		subsystems: make([]*gatedSubsystem, 0),
	}
}

// Register 注册一个子系统，同名子系统会被替换
// 传入 nil 视为该能力不存在，直接忽略
func (g *ControlGate) Register(name string, s Subsystem) {
	if s == nil {
		log.Printf("[ControlGate] Subsystem %q is nil, skipped", name)
		return
	}

	for _, gs := range g.subsystems {
		if gs.name == name {
			gs.subsystem = s
			gs.wasEnabled = s.Enabled()
			return
		}
	}

	g.subsystems = append(g.subsystems, &gatedSubsystem{
		name:       name,
		subsystem:  s,
		wasEnabled: s.Enabled(),
	})
}

// Subsystem 按名称查找子系统
func (g *ControlGate) Subsystem(name string) (Subsystem, bool) {
	for _, gs := range g.subsystems {
		if gs.name == name {
			return gs.subsystem, true
		}
	}
	return nil, false
}

// IsFrozen 是否处于冻结状态
func (g *ControlGate) IsFrozen() bool {
	return g.frozen
}

// Freeze 冻结玩家控制
// 已冻结时再次调用不会覆盖已记录的冻结前状态
func (g *ControlGate) Freeze() {
	if g.frozen {
		log.Printf("[ControlGate] Already frozen, keeping recorded states")
		return
	}

	for _, gs := range g.subsystems {
		gs.wasEnabled = gs.subsystem.Enabled()
		gs.subsystem.SetEnabled(false)
	}
	g.frozen = true

	log.Printf("[ControlGate] Frozen %d subsystems", len(g.subsystems))
}

// Unfreeze 恢复玩家控制，未冻结时为空操作
func (g *ControlGate) Unfreeze() {
	if !g.frozen {
		return
	}

	for _, gs := range g.subsystems {
		if gs.wasEnabled && !gs.subsystem.Enabled() {
			gs.subsystem.SetEnabled(true)
		}
	}
	g.frozen = false

	log.Printf("[ControlGate] Unfrozen")
}
