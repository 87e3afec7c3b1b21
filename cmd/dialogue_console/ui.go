package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/stonekeep/pkg/game"
	"github.com/decker502/stonekeep/pkg/input"
	"github.com/decker502/stonekeep/pkg/scenes"
	"github.com/decker502/stonekeep/pkg/systems"
	"github.com/muesli/reflow/wordwrap"
)

const (
	tickRate = 60
	// 终端没有"按住"事件，一次方向键按下视为按住这么多帧
	holdTicks = 10
)

// 方向键映射到移动键
var movementKeys = map[string]string{
	"w": "W", "up": "W",
	"a": "A", "left": "A",
	"s": "S", "down": "S",
	"d": "D", "right": "D",
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	objectiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

type tickMsg struct{}

// consoleModel bubbletea 模型：每帧推进场景，按键写入 Scripted 输入
type consoleModel struct {
	manager *game.SceneManager
	loading *game.LoadingScreen
	keys    *input.Scripted

	holds map[string]int
	width int
}

func newConsoleModel(manager *game.SceneManager, loading *game.LoadingScreen, keys *input.Scripted) consoleModel {
	return consoleModel{
		manager: manager,
		loading: loading,
		keys:    keys,
		holds:   make(map[string]int),
		width:   80,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/tickRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m consoleModel) Init() tea.Cmd {
	return tick()
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "+":
			if scene, ok := m.level(); ok {
				scene.SetHour(scene.Hour() + 1)
			}
			return m, nil
		}
		if key == " " {
			m.keys.Press(systems.SkipTypingKey)
			return m, nil
		}
		if move, ok := movementKeys[key]; ok {
			m.keys.Hold(move)
			m.holds[move] = holdTicks
			return m, nil
		}
		if len([]rune(key)) == 1 {
			m.keys.Press(key)
		}
		return m, nil

	case tickMsg:
		dt := 1.0 / tickRate
		m.manager.Update(dt)
		m.loading.Update(dt)
		m.keys.EndTick()
		for key, left := range m.holds {
			if left <= 1 {
				m.keys.Release(key)
				delete(m.holds, key)
				continue
			}
			m.holds[key] = left - 1
		}
		return m, tick()
	}
	return m, nil
}

func (m consoleModel) level() (*scenes.LevelScene, bool) {
	scene, ok := m.manager.GetCurrentScene().(*scenes.LevelScene)
	return scene, ok
}

func (m consoleModel) View() string {
	scene, ok := m.level()
	if !ok {
		return "No level loaded. Press Esc to quit.\n"
	}

	width := max(m.width-4, 20)
	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.ToUpper(scene.Name())))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  (%s)", scene.ID())))
	if m.loading.Visible() {
		b.WriteString("  " + loadingStyle.Render("Loading..."))
	}
	b.WriteString("\n\n")

	b.WriteString(objectiveStyle.Render(scene.Objective()) + "\n\n")

	player, pos := scene.Player()
	if player != nil && pos != nil {
		b.WriteString(labelStyle.Render("Player ") +
			fmt.Sprintf("x=%.1f z=%.1f  %s", pos.X, pos.Z, scene.CameraMode()))
	}
	b.WriteString(labelStyle.Render("   Time ") + fmt.Sprintf("%05.2fh", scene.Hour()))
	b.WriteString(labelStyle.Render("   ") + scene.ScoreText())
	b.WriteString(labelStyle.Render(fmt.Sprintf("   Coins left %d", scene.CoinsRemaining())))
	if scene.Gate().IsFrozen() {
		b.WriteString(labelStyle.Render("   [frozen]"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("NPCs") + "\n")
	for _, id := range scene.NPCIDs() {
		c, _ := scene.Coordinator(id)
		if !scene.NPCVisible(id) {
			continue
		}
		p := c.Position()
		line := fmt.Sprintf("  %-12s x=%.1f z=%.1f  %s", c.Name(), p.X, p.Z, c.Session().State())
		if c.InRange() {
			line += "  (in range)"
		}
		b.WriteString(line + "\n")
	}
	for _, t := range scene.Toggles() {
		state := "off"
		if t.On {
			state = "on"
		}
		b.WriteString(fmt.Sprintf("  %-12s %s [%s] %s\n", t.Name, t.Kind, t.Key, state))
	}
	b.WriteString("\n")

	if name, key, visible := scene.Prompt(); visible {
		b.WriteString(promptStyle.Render(fmt.Sprintf("[%s] Talk to %s", key, name)) + "\n\n")
	}

	if speaker, message, visible := scene.Dialogue(); visible {
		body := speakerStyle.Render(speaker) + "\n" + wordwrap.String(message, width-4)
		b.WriteString(panelStyle.Width(width).Render(body) + "\n\n")
	}

	b.WriteString(labelStyle.Render("WASD move  F/T camera  Y/O lamps, doors  M/E talk  Space skip  + hour  Esc quit"))
	return b.String()
}
