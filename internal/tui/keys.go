package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/ttycli/internal/mode"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case mode.WaitingInput:
		return m.handleInputKeys(msg)
	case mode.WaitingCommand:
		return m.handleCommandKeys(msg)
	case mode.SendingFile:
		return m.handleSendPromptKeys(msg)
	}
	return nil
}

// handleInputKeys forwards encoded key presses to the device and arms
// the Ctrl+T command chord.
func (m *Model) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	ev, ok := keyEventFrom(msg)
	if !ok {
		m.log.Debug("unhandled key", zap.String("key", msg.String()))
		return nil
	}

	tr := mode.HandleInput(ev)
	m.mode = tr.Next
	if len(tr.Send) > 0 {
		if _, err := m.transport.Write(tr.Send); err != nil {
			m.err = err
			m.log.Error("serial write failed", zap.Error(err))
			return tea.Quit
		}
	}
	return nil
}

// handleCommandKeys interprets the key following the Ctrl+T chord.
// The key is consumed here; it never reaches the device.
func (m *Model) handleCommandKeys(msg tea.KeyMsg) tea.Cmd {
	ev, ok := keyEventFrom(msg)
	if !ok {
		// Keys with no representation still leave command mode.
		m.mode = mode.WaitingInput
		return nil
	}
	tr := mode.HandleCommand(ev)
	m.mode = tr.Next

	switch tr.Next {
	case mode.Exit:
		m.log.Info("session terminated by user")
		return tea.Quit
	case mode.SendingFile:
		return m.openSendPrompt()
	case mode.ReceivingFile:
		// Receive transfers are not wired up yet; bounce back.
		m.mode = mode.WaitingInput
		return m.setStatusMessage("receive: transfer protocol not implemented")
	}
	return nil
}

// handleSendPromptKeys drives the file path prompt. Tab completes,
// Enter accepts, Esc cancels.
func (m *Model) handleSendPromptKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		path := m.prompt.Value()
		m.prompt.Blur()
		m.mode = mode.WaitingInput
		if path == "" {
			return nil
		}
		m.log.Info("file selected for sending", zap.String("path", path))
		return m.setStatusMessage(fmt.Sprintf("send %s: transfer protocol not implemented", path))

	case tea.KeyEsc:
		m.prompt.Blur()
		m.mode = mode.WaitingInput
		return nil

	case tea.KeyTab:
		if completed, ok := m.completer.Complete(m.prompt.Value()); ok {
			m.prompt.SetValue(completed)
			m.prompt.CursorEnd()
		}
		return nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) openSendPrompt() tea.Cmd {
	m.prompt.SetValue("")
	m.prompt.Focus()
	return textinput.Blink
}

// keyEventFrom translates a Bubble Tea key message into the state
// machine's key representation. Keys without a representation (alt
// combinations, function keys, unlisted control chords) report false.
func keyEventFrom(msg tea.KeyMsg) (mode.KeyEvent, bool) {
	if msg.Alt {
		return mode.KeyEvent{}, false
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return mode.KeyEvent{}, false
		}
		return mode.KeyEvent{Key: mode.KeyRune, Rune: msg.Runes[0]}, true
	case tea.KeySpace:
		return mode.KeyEvent{Key: mode.KeyRune, Rune: ' '}, true
	case tea.KeyCtrlT:
		return mode.KeyEvent{Key: mode.KeyRune, Rune: 't', Ctrl: true}, true
	case tea.KeyEnter:
		return mode.KeyEvent{Key: mode.KeyEnter}, true
	case tea.KeyBackspace:
		return mode.KeyEvent{Key: mode.KeyBackspace}, true
	case tea.KeyTab:
		return mode.KeyEvent{Key: mode.KeyTab}, true
	case tea.KeyEsc:
		return mode.KeyEvent{Key: mode.KeyEsc}, true
	case tea.KeyUp:
		return mode.KeyEvent{Key: mode.KeyUp}, true
	case tea.KeyDown:
		return mode.KeyEvent{Key: mode.KeyDown}, true
	case tea.KeyRight:
		return mode.KeyEvent{Key: mode.KeyRight}, true
	case tea.KeyLeft:
		return mode.KeyEvent{Key: mode.KeyLeft}, true
	case tea.KeyEnd:
		return mode.KeyEvent{Key: mode.KeyEnd}, true
	case tea.KeyHome:
		return mode.KeyEvent{Key: mode.KeyHome}, true
	case tea.KeyShiftTab:
		return mode.KeyEvent{Key: mode.KeyBackTab}, true
	case tea.KeyInsert:
		return mode.KeyEvent{Key: mode.KeyInsert}, true
	case tea.KeyDelete:
		return mode.KeyEvent{Key: mode.KeyDelete}, true
	case tea.KeyPgUp:
		return mode.KeyEvent{Key: mode.KeyPgUp}, true
	case tea.KeyPgDown:
		return mode.KeyEvent{Key: mode.KeyPgDown}, true
	}

	return mode.KeyEvent{}, false
}
