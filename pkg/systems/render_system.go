package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/stonekeep/pkg/components"
	"github.com/decker502/stonekeep/pkg/config"
	"github.com/decker502/stonekeep/pkg/ecs"
	"github.com/decker502/stonekeep/pkg/game"
	"github.com/decker502/stonekeep/pkg/interaction"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/muesli/reflow/wordwrap"
)

var (
	nightColor  = color.RGBA{14, 18, 38, 255}
	dayColor    = color.RGBA{96, 142, 84, 255}
	playerColor = color.RGBA{80, 220, 120, 255}
	npcColor    = color.RGBA{90, 140, 240, 255}
	coinColor   = color.RGBA{250, 205, 60, 255}
	lampOnColor = color.RGBA{255, 240, 150, 255}
	offColor    = color.RGBA{90, 90, 90, 255}
	doorColor   = color.RGBA{140, 90, 50, 255}
	rangeColor  = color.RGBA{255, 255, 255, 60}
	panelColor  = color.RGBA{0, 0, 0, 200}
	promptColor = color.RGBA{30, 30, 30, 220}
)

// HUD 渲染系统读取的界面状态
// 各字段都可以为 nil，缺失的部分不绘制
type HUD struct {
	Dialogue      *game.TextPanel
	DialoguePanel interaction.Visibility
	Objective     *game.TextPanel
	Score         *game.TextPanel
	Popup         *interaction.PopupBroker
	Cycle         *DayNightCycle

	ShowObjectives bool
	ShowDebug      bool
}

// RenderSystem 俯视调试视图
// 以玩家为中心把 X/Z 平面画到屏幕上，只使用基本图元和调试字体
type RenderSystem struct {
	entityManager *ecs.EntityManager
	hud           *HUD
	scale         float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, hud *HUD) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		hud:           hud,
		scale:         config.WorldToScreenScale,
	}
}

// Draw 绘制场景和界面
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	var centerX, centerZ float64
	_, player, playerPos, hasPlayer := findPlayer(s.entityManager)
	if hasPlayer {
		centerX, centerZ = playerPos.X, playerPos.Z
	}
	project := func(x, z float64) (float32, float32) {
		return float32((x-centerX)*s.scale + w/2), float32((z-centerZ)*s.scale + h/2)
	}

	s.drawBackground(screen, w, h)
	s.drawToggles(screen, project)
	s.drawCoins(screen, project)
	s.drawNPCs(screen, project)
	if hasPlayer {
		s.drawPlayer(screen, project, player, playerPos)
	}
	s.drawHUD(screen, w, h, player)
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image, w, h float64) {
	intensity := 1.0
	if s.hud != nil && s.hud.Cycle != nil {
		intensity = s.hud.Cycle.Intensity()
	}
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), lerpColor(nightColor, dayColor, intensity), false)
}

func (s *RenderSystem) drawToggles(screen *ebiten.Image, project func(x, z float64) (float32, float32)) {
	for _, id := range ecs.GetEntitiesWith2[*components.ToggleComponent, *components.PositionComponent](s.entityManager) {
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		x, y := project(pos.X, pos.Z)

		switch toggle.Kind {
		case components.ToggleLamp:
			c := offColor
			if toggle.On {
				c = lampOnColor
				vector.DrawFilledCircle(screen, x, y, 18, color.RGBA{255, 240, 150, 50}, true)
			}
			vector.DrawFilledCircle(screen, x, y, 6, c, true)
		case components.ToggleDoor:
			if toggle.On {
				vector.StrokeRect(screen, x-10, y-4, 20, 8, 2, doorColor, false)
			} else {
				vector.DrawFilledRect(screen, x-10, y-4, 20, 8, doorColor, false)
			}
		}

		if s.hud != nil && s.hud.ShowDebug {
			vector.StrokeCircle(screen, x, y, float32(toggle.Range*s.scale), 1, rangeColor, true)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s [%s]", toggle.Name, toggle.Key), int(x)-20, int(y)+10)
	}
}

func (s *RenderSystem) drawCoins(screen *ebiten.Image, project func(x, z float64) (float32, float32)) {
	for _, id := range ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.PositionComponent](s.entityManager) {
		coin, _ := ecs.GetComponent[*components.CollectibleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		x, y := project(pos.X, pos.Z)

		// 自转：宽度随角度变化
		half := float32(math.Abs(math.Cos(coin.Rotation*math.Pi/180))*6) + 1
		vector.DrawFilledRect(screen, x-half, y-6, half*2, 12, coinColor, false)
	}
}

func (s *RenderSystem) drawNPCs(screen *ebiten.Image, project func(x, z float64) (float32, float32)) {
	for _, id := range ecs.GetEntitiesWith2[*components.DialogueComponent, *components.PositionComponent](s.entityManager) {
		dialogue, _ := ecs.GetComponent[*components.DialogueComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if dialogue.Visibility != nil && !dialogue.Visibility.Visible() {
			continue
		}
		x, y := project(pos.X, pos.Z)

		vector.DrawFilledCircle(screen, x, y, 10, npcColor, true)

		name := dialogue.NPCID
		if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, id); ok {
			name = label.Text
		}
		ebitenutil.DebugPrintAt(screen, name, int(x)-len(name)*3, int(y)+12)

		coordinator := dialogue.Coordinator
		if coordinator == nil {
			continue
		}
		if s.hud != nil && s.hud.ShowDebug {
			vector.StrokeCircle(screen, x, y, float32(coordinator.ActivationRange()*s.scale), 1, rangeColor, true)
			ebitenutil.DebugPrintAt(screen, coordinator.Session().State().String(), int(x)-20, int(y)+26)
		}

		// 交互提示画在提示归属者头顶
		if s.hud != nil && s.hud.Popup != nil && s.hud.Popup.Visible() && s.hud.Popup.IsOwner(coordinator.ID()) {
			prompt := fmt.Sprintf("[%s] Talk", coordinator.InteractKey())
			vector.DrawFilledRect(screen, x-34, y-36, 68, 18, promptColor, false)
			ebitenutil.DebugPrintAt(screen, prompt, int(x)-28, int(y)-34)
		}
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, project func(x, z float64) (float32, float32), player *components.PlayerComponent, pos *components.PositionComponent) {
	x, y := project(pos.X, pos.Z)

	if player.BodyVisible && player.RenderersVisible {
		vector.DrawFilledCircle(screen, x, y, 9, playerColor, true)
	} else {
		vector.StrokeCircle(screen, x, y, 9, 1, playerColor, true)
	}
	fx, fy := project(pos.X+player.FacingX*0.6, pos.Z+player.FacingZ*0.6)
	vector.StrokeLine(screen, x, y, fx, fy, 2, color.White, true)
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, w, h float64, player *components.PlayerComponent) {
	if s.hud == nil {
		return
	}

	if s.hud.ShowObjectives && s.hud.Objective != nil {
		ebitenutil.DebugPrintAt(screen, s.hud.Objective.Message(), 10, 10)
	}
	if s.hud.Score != nil {
		ebitenutil.DebugPrintAt(screen, s.hud.Score.Message(), int(w)-90, 10)
	}

	status := ""
	if player != nil {
		status = "TPS"
		if player.FirstPerson {
			status = "FPS"
		}
	}
	if s.hud.Cycle != nil {
		status += fmt.Sprintf("  %05.2fh", s.hud.Cycle.Hour())
	}
	ebitenutil.DebugPrintAt(screen, status, int(w)-110, int(h)-20)

	if s.hud.DialoguePanel != nil && s.hud.DialoguePanel.Visible() && s.hud.Dialogue != nil {
		top := float32(h) - 110
		vector.DrawFilledRect(screen, 20, top, float32(w)-40, 80, panelColor, false)
		ebitenutil.DebugPrintAt(screen, s.hud.Dialogue.Speaker(), 32, int(top)+8)
		// 调试字体每个字符 6 像素宽
		columns := (int(w) - 64) / 6
		ebitenutil.DebugPrintAt(screen, wordwrap.String(s.hud.Dialogue.Message(), columns), 32, int(top)+30)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
