package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/ttycli/internal/serialport"
)

// CreateTestModel creates a session Model on a mock transport, sized
// as if the terminal reported 80x24.
func CreateTestModel(t *testing.T) (*Model, *serialport.MockTransport) {
	t.Helper()

	mock := serialport.NewMockTransport()
	m := New(mock, "/dev/ttyTEST0", serialport.DefaultConfig(), nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	return m, mock
}

// ApplyKey feeds one key message through Update and returns the
// resulting command.
func ApplyKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// TypeRunes feeds printable characters one key press at a time and
// returns the command produced by the last one.
func TypeRunes(m *Model, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		cmd = ApplyKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

// IsQuit reports whether cmd terminates the program.
func IsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
