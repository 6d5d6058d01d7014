package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rikkajump/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestSpecialKeys(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsCancel(tea.KeyMsg{Type: tea.KeyDown}) || !km.IsCancel(runeKey('s')) {
		t.Error("down and s should cancel held directions")
	}
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should take a screenshot")
	}
	if km.IsScreenshot(runeKey('s')) {
		t.Error("plain s is not a screenshot")
	}
}
