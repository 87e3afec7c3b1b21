package scenes

import (
	"log"
	"slices"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/config"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/game"
	"github.com/decker502/stonekeep/pkg/interaction"
	"github.com/decker502/stonekeep/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Deps 场景共享的外部依赖，除 Input 外都可以为 nil
type Deps struct {
	Loader   interaction.SceneLoader // 场景切换请求（通常是 game.LoadingScreen）
	Input    systems.HeldInput
	Progress *game.ProgressManager
	Settings *game.GameSettings
	OnQuit   func() // 菜单中选择退出
}

// LevelScene 可游玩的关卡
//
// 关卡配置在创建时一次性转换成 ECS 实体和交互核心对象，
// 之后每帧按固定顺序推进：调度器 → 对话 → 镜头 → 移动 → 开关 → 金币 → 昼夜。
type LevelScene struct {
	cfg  *config.LevelConfig
	deps Deps

	entityManager *ecs.EntityManager
	scheduler     *interaction.Scheduler
	gate          *interaction.ControlGate
	broker        *interaction.PopupBroker
	lock          *interaction.InteractionLock
	tracker       *interaction.MilestoneTracker
	typewriter    *interaction.Typewriter
	controls      *systems.PlayerControls

	dialoguePanel *interaction.Flag
	dialogueText  *game.TextPanel
	objectiveText *game.TextPanel
	scoreText     *game.TextPanel
	score         *game.ScoreKeeper
	cycle         *systems.DayNightCycle

	dialogueSystem    *systems.DialogueSystem
	movementSystem    *systems.PlayerMovementSystem
	cameraSystem      *systems.CameraSwitchSystem
	toggleSystem      *systems.ToggleSystem
	collectibleSystem *systems.CollectibleSystem
	renderSystem      *systems.RenderSystem

	player       ecs.EntityID
	coordinators map[string]*interaction.DialogueCoordinator
	animators    map[string]*systems.ScheduledAnimator
}

// NewLevelScene 根据关卡配置创建关卡场景
func NewLevelScene(cfg *config.LevelConfig, deps Deps) *LevelScene {
	s := &LevelScene{
		cfg:           cfg,
		deps:          deps,
		entityManager: ecs.NewEntityManager(),
		scheduler:     interaction.NewScheduler(),
		gate:          interaction.NewControlGate(),
		broker:        interaction.NewPopupBroker(interaction.NewFlag(false)),
		lock:          interaction.NewInteractionLock(),
		controls:      systems.NewPlayerControls(),
		dialoguePanel: interaction.NewFlag(false),
		dialogueText:  game.NewTextPanel(),
		objectiveText: game.NewTextPanel(),
		scoreText:     game.NewTextPanel(),
		cycle:         systems.NewDayNightCycle(cfg.DayNight),
		coordinators:  make(map[string]*interaction.DialogueCoordinator),
		animators:     make(map[string]*systems.ScheduledAnimator),
	}
	s.controls.Register(s.gate)

	saved := game.LevelProgress{}
	if deps.Progress != nil {
		saved = deps.Progress.Level(cfg.ID)
	}

	s.initTracker(saved)
	s.score = game.NewScoreKeeper(saved.Score, s.scoreText)
	s.initTypewriter()

	s.player = s.createPlayer()
	s.createNPCs(saved.RevealedNPCs)
	s.createCoins(saved.CollectedCoins)
	s.createToggles(cfg.Lamps, components.ToggleLamp)
	s.createToggles(cfg.Doors, components.ToggleDoor)

	s.initSystems()

	log.Printf("[LevelScene] %s (%s) ready: %d npcs, %d coins, milestone %d/%d",
		cfg.Name, cfg.ID, len(cfg.NPCs), len(cfg.Coins), s.tracker.CurrentIndex(), s.tracker.Len())
	return s
}

func (s *LevelScene) initTracker(saved game.LevelProgress) {
	s.tracker = interaction.NewMilestoneTracker(s.cfg.Milestones, s.objectiveText)
	s.tracker.Restore(saved.MilestoneIndex)

	// 先保存进度，再请求切换场景
	s.tracker.OnExhausted(func() {
		s.SaveOnExit()
	})
	if s.cfg.NextScene != "" {
		interaction.ConnectMilestonesToScene(s.tracker, s.deps.Loader, s.cfg.NextScene)
	}
}

func (s *LevelScene) initTypewriter() {
	cps := s.cfg.Typing.CharsPerSecond
	if cps <= 0 {
		return
	}
	if s.deps.Settings != nil {
		cps *= s.deps.Settings.TypingSpeedScale
	}
	s.typewriter = interaction.NewTypewriter(s.dialogueText, cps)
}

// textDisplay 协调器使用的文本面板：开启打字效果时是打字机
func (s *LevelScene) textDisplay() interaction.TextDisplay {
	if s.typewriter != nil {
		return s.typewriter
	}
	return s.dialogueText
}

func (s *LevelScene) createPlayer() ecs.EntityID {
	em := s.entityManager
	id := em.CreateEntity()
	pc := s.cfg.Player

	player := &components.PlayerComponent{
		Speed:            pc.Speed,
		FacingZ:          -1,
		BodyVisible:      true,
		RenderersVisible: true,
	}
	rig := &components.CameraRigComponent{
		Mode:                 components.CameraThirdPerson,
		FPSCamera:            interaction.NewFlag(false),
		TPSCamera:            interaction.NewFlag(true),
		FPSKey:               s.cfg.Camera.FPSKey,
		TPSKey:               s.cfg.Camera.TPSKey,
		HideDelay:            s.cfg.Camera.HideDelay,
		DisableRenderersOnly: s.cfg.Camera.DisableRenderersOnly,
	}
	if s.cfg.Camera.StartMode == config.CameraModeFPS {
		rig.Mode = components.CameraFirstPerson
		rig.FPSCamera.SetEnabled(true)
		rig.TPSCamera.SetEnabled(false)
		player.FirstPerson = true
		if rig.DisableRenderersOnly {
			player.RenderersVisible = false
		} else {
			player.BodyVisible = false
		}
	}

	ecs.AddComponent(em, id, &components.PositionComponent{X: pc.Position.X, Y: pc.Position.Y, Z: pc.Position.Z})
	ecs.AddComponent(em, id, player)
	ecs.AddComponent(em, id, rig)
	return id
}

// createNPCs 创建 NPC，revealed 中的 NPC 即使配置为隐藏也直接显示
func (s *LevelScene) createNPCs(revealed []string) {
	em := s.entityManager

	// 先分配实体和可见性，揭示目标可能排在后面
	ids := make(map[string]ecs.EntityID, len(s.cfg.NPCs))
	visibility := make(map[string]*interaction.Flag, len(s.cfg.NPCs))
	for _, npc := range s.cfg.NPCs {
		ids[npc.ID] = em.CreateEntity()
		visibility[npc.ID] = interaction.NewFlag(!npc.Hidden || slices.Contains(revealed, npc.ID))
	}

	durations := make(map[string]float64, len(s.cfg.Animations))
	for _, anim := range s.cfg.Animations {
		durations[anim.Trigger] = anim.Duration
	}

	for _, npc := range s.cfg.NPCs {
		id := ids[npc.ID]
		owner := interaction.InteractorID(id)
		animator := systems.NewScheduledAnimator(owner, s.scheduler, durations)

		collab := interaction.Collaborators{
			Text:      s.textDisplay(),
			Panel:     s.dialoguePanel,
			Popup:     s.broker,
			Gate:      s.gate,
			Tracker:   s.tracker,
			Animator:  animator,
			Scheduler: s.scheduler,
			Lock:      s.lock,
		}
		if npc.Reveal != "" {
			collab.Reveal = visibility[npc.Reveal]
		}

		coordinator := interaction.NewDialogueCoordinator(interaction.CoordinatorConfig{
			ID:              owner,
			Name:            npc.Speaker,
			Position:        npc.Position.Vec3(),
			ActivationRange: npc.ActivationRange,
			InteractKey:     npc.InteractKey,
			Lines:           npc.Lines,
			MilestoneIndex:  npc.Milestone(),
			EndAnimation:    npc.EndAnimation.ToInteraction(),
		}, collab)
		animator.OnComplete(coordinator.NotifyComplete)

		ecs.AddComponent(em, id, &components.PositionComponent{X: npc.Position.X, Y: npc.Position.Y, Z: npc.Position.Z})
		ecs.AddComponent(em, id, &components.DialogueComponent{
			NPCID:       npc.ID,
			Coordinator: coordinator,
			Visibility:  visibility[npc.ID],
		})
		label := npc.Speaker
		if label == "" {
			label = npc.ID
		}
		ecs.AddComponent(em, id, &components.LabelComponent{Text: label})

		s.coordinators[npc.ID] = coordinator
		s.animators[npc.ID] = animator
	}
}

// createCoins 创建金币，跳过存档中已拾取的下标
func (s *LevelScene) createCoins(collected []int) {
	em := s.entityManager
	for slot, pos := range s.cfg.Coins {
		if slices.Contains(collected, slot) {
			continue
		}
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y, Z: pos.Z})
		ecs.AddComponent(em, id, &components.CollectibleComponent{
			Slot:          slot,
			Value:         s.cfg.Coin.Value,
			PickupRadius:  s.cfg.Coin.PickupRadius,
			RotationSpeed: s.cfg.Coin.RotationSpeed,
		})
	}
}

func (s *LevelScene) createToggles(toggles []config.ToggleConfig, kind components.ToggleKind) {
	em := s.entityManager
	for _, tc := range toggles {
		id := em.CreateEntity()
		on := tc.On != nil && *tc.On
		ecs.AddComponent(em, id, &components.PositionComponent{X: tc.Position.X, Y: tc.Position.Y, Z: tc.Position.Z})
		ecs.AddComponent(em, id, &components.ToggleComponent{
			Name:  tc.Name,
			Kind:  kind,
			Key:   tc.Key,
			Range: tc.Range,
			On:    on,
		})
	}
}

func (s *LevelScene) initSystems() {
	em := s.entityManager
	in := s.deps.Input

	s.dialogueSystem = systems.NewDialogueSystem(em, in, s.typewriter)
	s.movementSystem = systems.NewPlayerMovementSystem(em, in, s.controls)
	s.cameraSystem = systems.NewCameraSwitchSystem(em, in, s.scheduler, s.controls.CameraSwitch)
	s.toggleSystem = systems.NewToggleSystem(em, in, s.controls.Input)
	s.collectibleSystem = systems.NewCollectibleSystem(em, s.score)

	hud := &systems.HUD{
		Dialogue:       s.dialogueText,
		DialoguePanel:  s.dialoguePanel,
		Objective:      s.objectiveText,
		Score:          s.scoreText,
		Popup:          s.broker,
		Cycle:          s.cycle,
		ShowObjectives: true,
	}
	if s.deps.Settings != nil {
		hud.ShowObjectives = s.deps.Settings.ShowObjectives
		hud.ShowDebug = s.deps.Settings.ShowDebug
	}
	s.renderSystem = systems.NewRenderSystem(em, hud)
}

// Update 推进关卡一帧
func (s *LevelScene) Update(deltaTime float64) {
	s.scheduler.Update(deltaTime)

	s.dialogueSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.toggleSystem.Update(deltaTime)
	s.collectibleSystem.Update(deltaTime)
	s.cycle.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()

	// 对话中不能离开关卡
	if s.deps.Input != nil && s.deps.Input.KeyEdge("Escape") && !s.gate.IsFrozen() {
		s.SaveOnExit()
		if s.deps.Loader != nil {
			s.deps.Loader.RequestLoad(config.SceneMenu)
		}
	}
}

// Draw 绘制关卡
func (s *LevelScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// OnActivate 实现 game.Activatable，场景真正切入时记录为当前场景
func (s *LevelScene) OnActivate() {
	if s.deps.Progress != nil {
		s.deps.Progress.SetCurrentScene(s.cfg.ID)
	}
}

// SaveOnExit 实现 game.Saveable
func (s *LevelScene) SaveOnExit() bool {
	if s.deps.Progress == nil {
		return true
	}
	s.deps.Progress.SetLevel(s.cfg.ID, s.snapshot())
	if err := s.deps.Progress.Save(); err != nil {
		log.Printf("[LevelScene] 保存进度失败: %v", err)
		return false
	}
	return true
}

// snapshot 当前关卡进度：目标、分数、已拾取的金币和已揭示的 NPC
func (s *LevelScene) snapshot() game.LevelProgress {
	progress := game.LevelProgress{
		MilestoneIndex: s.tracker.CurrentIndex(),
		Score:          s.score.Score(),
		Completed:      s.tracker.Exhausted(),
	}

	remaining := make(map[int]bool)
	for _, id := range ecs.GetEntitiesWith1[*components.CollectibleComponent](s.entityManager) {
		coin, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
		remaining[coin.Slot] = true
	}
	for slot := range s.cfg.Coins {
		if !remaining[slot] {
			progress.CollectedCoins = append(progress.CollectedCoins, slot)
		}
	}

	for _, npc := range s.cfg.NPCs {
		if npc.Hidden && s.NPCVisible(npc.ID) {
			progress.RevealedNPCs = append(progress.RevealedNPCs, npc.ID)
		}
	}
	return progress
}
