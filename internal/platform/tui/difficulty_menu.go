package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/four-wins/internal/config"
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// DifficultyModel lets users choose how deep the CPU searches.
type DifficultyModel struct {
	cursor    int
	width     int
	height    int
	cpu       config.CPUConfig
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a difficulty picker with Normal preselected.
func NewDifficultyModel(cpu config.CPUConfig, width, height int) DifficultyModel {
	return DifficultyModel{
		cursor:    1,
		width:     width,
		height:    height,
		cpu:       cpu,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficulties)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficulties[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("C P U   O P P O N E N T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range difficulties {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-6s (looks %d moves ahead)", cursor, d, m.cpu.Depth(d))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or false if still choosing.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	return m.selection, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}
