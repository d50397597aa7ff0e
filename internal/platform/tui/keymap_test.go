package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/four-wins/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", runeKey(' '), core.ActionDrop, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionDrop, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDrop, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrameSkipsQuit(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.True(t, km.MapKeyToFrame(runeKey('q'), &frame))
	assert.False(t, frame.Has(core.ActionQuit))

	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame))
	assert.True(t, frame.Has(core.ActionLeft))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionHistory, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('x')))
}
