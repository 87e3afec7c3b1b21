package config

import (
	"fmt"
	"os"

	"github.com/decker502/stonekeep/pkg/interaction"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 定义了关卡中的 NPC 对话、目标清单、可收集物和可切换物体
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "level_1"
	Name        string `yaml:"name"`        // 关卡名称
	Description string `yaml:"description"` // 关卡描述（可选）
	NextScene   string `yaml:"nextScene"`   // 所有目标完成后加载的场景，为空表示不切换

	Player     PlayerConfig     `yaml:"player"`     // 玩家初始状态
	Milestones []string         `yaml:"milestones"` // 有序目标清单
	NPCs       []NPCConfig      `yaml:"npcs"`       // 可对话 NPC
	Coins      []Position       `yaml:"coins"`      // 金币位置
	Coin       CoinConfig       `yaml:"coin"`       // 金币参数
	Lamps      []ToggleConfig   `yaml:"lamps"`      // 灯（默认按 Y 开关）
	Doors      []ToggleConfig   `yaml:"doors"`      // 门（默认按 M 开关）
	Camera     CameraConfig     `yaml:"camera"`     // 镜头切换
	DayNight   DayNightConfig   `yaml:"dayNight"`   // 昼夜循环
	Typing     TypingConfig     `yaml:"typing"`     // 打字效果
	Animations []AnimationEvent `yaml:"animations"` // 动画触发后多久回报完成（模拟动画事件）
}

// Position 世界坐标
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 转换为交互核心使用的坐标
func (p Position) Vec3() interaction.Vec3 {
	return interaction.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Position Position `yaml:"position"` // 初始位置
	Speed    float64  `yaml:"speed"`    // 移动速度（单位/秒），默认 3
}

// NPCConfig 单个 NPC 的对话配置
type NPCConfig struct {
	ID              string                     `yaml:"id"`              // NPC 唯一标识
	Speaker         string                     `yaml:"speaker"`         // 显示名称（台词未指定说话人时使用）
	Position        Position                   `yaml:"position"`        // 位置
	ActivationRange float64                    `yaml:"activationRange"` // 触发距离，默认 3
	InteractKey     string                     `yaml:"interactKey"`     // 交互键，默认 "M"
	MilestoneIndex  *int                       `yaml:"milestoneIndex"`  // 对话完成时推进的目标索引，缺省表示不推进
	Reveal          string                     `yaml:"reveal"`          // 对话结束后显示的 NPC ID（可选）
	Hidden          bool                       `yaml:"hidden"`          // 初始是否隐藏（等待其他 NPC 揭示）
	EndAnimation    EndAnimationConfig         `yaml:"endAnimation"`    // 结束动画（可选）
	Lines           []interaction.DialogueLine `yaml:"lines"`           // 台词
}

// Milestone 返回目标索引，未配置时返回 interaction.NoMilestone
func (n NPCConfig) Milestone() int {
	if n.MilestoneIndex == nil {
		return interaction.NoMilestone
	}
	return *n.MilestoneIndex
}

// EndAnimationConfig 对话结束动画配置
type EndAnimationConfig struct {
	Trigger       string  `yaml:"trigger"`       // 动画触发器名称，为空表示不播放
	HoldDuration  float64 `yaml:"holdDuration"`  // 触发后保持冻结的时长（秒）
	WaitForSignal bool    `yaml:"waitForSignal"` // 是否等待动画完成信号
}

// ToInteraction 转换为交互核心的结束动画配置
func (e EndAnimationConfig) ToInteraction() interaction.EndAnimation {
	return interaction.EndAnimation{
		Enabled:       e.Trigger != "",
		TriggerName:   e.Trigger,
		HoldSeconds:   e.HoldDuration,
		WaitForSignal: e.WaitForSignal,
	}
}

// AnimationEvent 动画完成事件：触发器被触发 Duration 秒后通知完成
// 用于没有真实动画系统时模拟时间轴上的动画事件
type AnimationEvent struct {
	Trigger  string  `yaml:"trigger"`
	Duration float64 `yaml:"duration"`
}

// CoinConfig 金币参数
type CoinConfig struct {
	PickupRadius  float64 `yaml:"pickupRadius"`  // 拾取半径，默认 1
	RotationSpeed float64 `yaml:"rotationSpeed"` // 旋转速度（度/秒），默认 100
	Value         int     `yaml:"value"`         // 每枚金币分数，默认 1
}

// ToggleConfig 可切换物体（灯、门）
type ToggleConfig struct {
	Name     string   `yaml:"name"`
	Position Position `yaml:"position"`
	Range    float64  `yaml:"range"` // 交互距离，默认 3
	Key      string   `yaml:"key"`   // 切换按键
	On       *bool    `yaml:"on"`    // 初始状态：灯默认开，门默认关
}

// CameraConfig 镜头切换配置
type CameraConfig struct {
	StartMode            string  `yaml:"startMode"`            // "tps" 或 "fps"，默认 "tps"
	HideDelay            float64 `yaml:"hideDelay"`            // 切到第一人称后隐藏角色模型的延迟（秒），默认 0.25
	DisableRenderersOnly bool    `yaml:"disableRenderersOnly"` // 只关闭渲染而不是隐藏整个对象
	FPSKey               string  `yaml:"fpsKey"`               // 默认 "F"
	TPSKey               string  `yaml:"tpsKey"`               // 默认 "T"
}

// DayNightConfig 昼夜循环配置
type DayNightConfig struct {
	DayDurationMinutes float64 `yaml:"dayDurationMinutes"` // 一整天的时长（分钟），默认 24
	StartHour          float64 `yaml:"startHour"`          // 起始小时 0-24，默认 12（午夜请写 24）
	TimeScale          float64 `yaml:"timeScale"`          // 时间倍率，默认 1
	Paused             bool    `yaml:"paused"`             // 为 true 时时间不自动推进
}

// TypingConfig 打字效果配置
type TypingConfig struct {
	CharsPerSecond float64 `yaml:"charsPerSecond"` // 每秒显示字符数，0 表示关闭打字效果
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}
	return ParseLevelConfig(data, filepath)
}

// ParseLevelConfig 从内存中的 YAML 数据解析关卡配置
// source 只用于错误信息（文件路径或嵌入资源路径）
func ParseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	// 应用默认值（向后兼容性）
	applyDefaults(&levelConfig)

	// 验证必填字段
	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}

	return &levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.Player.Speed == 0 {
		config.Player.Speed = DefaultPlayerSpeed
	}

	for i := range config.NPCs {
		npc := &config.NPCs[i]
		if npc.ActivationRange == 0 {
			npc.ActivationRange = interaction.DefaultActivationRange
		}
		if npc.InteractKey == "" {
			npc.InteractKey = interaction.DefaultInteractKey
		}
		// 台词未写说话人时使用 NPC 的显示名称
		for j := range npc.Lines {
			if npc.Lines[j].Speaker == "" {
				npc.Lines[j].Speaker = npc.Speaker
			}
		}
	}

	if config.Coin.PickupRadius == 0 {
		config.Coin.PickupRadius = DefaultCoinPickupRadius
	}
	if config.Coin.RotationSpeed == 0 {
		config.Coin.RotationSpeed = DefaultCoinRotationSpeed
	}
	if config.Coin.Value == 0 {
		config.Coin.Value = 1
	}

	applyToggleDefaults(config.Lamps, DefaultLampKey, true)
	applyToggleDefaults(config.Doors, DefaultDoorKey, false)

	if config.Camera.StartMode == "" {
		config.Camera.StartMode = CameraModeTPS
	}
	if config.Camera.HideDelay == 0 {
		config.Camera.HideDelay = DefaultCameraHideDelay
	}
	if config.Camera.FPSKey == "" {
		config.Camera.FPSKey = DefaultFPSKey
	}
	if config.Camera.TPSKey == "" {
		config.Camera.TPSKey = DefaultTPSKey
	}

	if config.DayNight.DayDurationMinutes == 0 {
		config.DayNight.DayDurationMinutes = DefaultDayDurationMinutes
	}
	if config.DayNight.StartHour == 0 {
		config.DayNight.StartHour = DefaultStartHour
	}
	if config.DayNight.TimeScale == 0 {
		config.DayNight.TimeScale = 1
	}

	// Typing.CharsPerSecond 为 0 时表示关闭打字效果，无需处理
}

func applyToggleDefaults(toggles []ToggleConfig, key string, on bool) {
	for i := range toggles {
		if toggles[i].Range == 0 {
			toggles[i].Range = DefaultToggleRange
		}
		if toggles[i].Key == "" {
			toggles[i].Key = key
		}
		if toggles[i].On == nil {
			initial := on
			toggles[i].On = &initial
		}
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level ID is required")
	}
	if config.Name == "" {
		return fmt.Errorf("level name is required")
	}
	if config.Player.Speed < 0 {
		return fmt.Errorf("player speed must be non-negative, got %.2f", config.Player.Speed)
	}

	npcIDs := make(map[string]bool, len(config.NPCs))
	for i, npc := range config.NPCs {
		if npc.ID == "" {
			return fmt.Errorf("npc %d: id is required", i)
		}
		if npcIDs[npc.ID] {
			return fmt.Errorf("npc %d: duplicate id %q", i, npc.ID)
		}
		npcIDs[npc.ID] = true

		if npc.ActivationRange < 0 {
			return fmt.Errorf("npc %s: activationRange must be non-negative", npc.ID)
		}
		if idx := npc.Milestone(); idx != interaction.NoMilestone && (idx < 0 || idx >= len(config.Milestones)) {
			return fmt.Errorf("npc %s: milestoneIndex %d out of range [0, %d)", npc.ID, idx, len(config.Milestones))
		}
		if npc.EndAnimation.HoldDuration < 0 {
			return fmt.Errorf("npc %s: endAnimation.holdDuration must be non-negative", npc.ID)
		}
	}

	// 揭示目标必须是本关卡中的 NPC
	for _, npc := range config.NPCs {
		if npc.Reveal != "" && !npcIDs[npc.Reveal] {
			return fmt.Errorf("npc %s: reveal target %q not found", npc.ID, npc.Reveal)
		}
		if npc.Reveal == npc.ID && npc.Reveal != "" {
			return fmt.Errorf("npc %s: cannot reveal itself", npc.ID)
		}
	}

	switch config.Camera.StartMode {
	case CameraModeTPS, CameraModeFPS:
	default:
		return fmt.Errorf("camera.startMode must be %q or %q, got %q", CameraModeTPS, CameraModeFPS, config.Camera.StartMode)
	}
	if config.Camera.HideDelay < 0 {
		return fmt.Errorf("camera.hideDelay must be non-negative")
	}

	if config.DayNight.StartHour < 0 || config.DayNight.StartHour > 24 {
		return fmt.Errorf("dayNight.startHour must be within [0, 24], got %.2f", config.DayNight.StartHour)
	}
	if config.DayNight.DayDurationMinutes < MinDayDurationMinutes {
		return fmt.Errorf("dayNight.dayDurationMinutes must be at least %.2f", MinDayDurationMinutes)
	}

	if config.Typing.CharsPerSecond < 0 {
		return fmt.Errorf("typing.charsPerSecond must be non-negative")
	}

	for i, anim := range config.Animations {
		if anim.Trigger == "" {
			return fmt.Errorf("animation %d: trigger is required", i)
		}
		if anim.Duration < 0 {
			return fmt.Errorf("animation %s: duration must be non-negative", anim.Trigger)
		}
	}

	return nil
}
