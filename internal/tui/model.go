package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/ttycli/internal/mode"
	"github.com/studiowebux/ttycli/internal/pathcomplete"
	"github.com/studiowebux/ttycli/internal/serialport"
)

const (
	// maxScrollback bounds the received-byte buffer; older bytes fall
	// off the front.
	maxScrollback = 64 * 1024

	// statusMessageTTL is how long transient status messages stay up.
	statusMessageTTL = 3 * time.Second
)

// Model maintains the session state for the Bubble Tea event loop.
type Model struct {
	transport serialport.Transport
	device    string
	cfg       serialport.Config
	log       *zap.Logger

	mode     mode.Mode
	received []byte

	output    viewport.Model
	prompt    textinput.Model
	completer pathcomplete.Completer
	workdir   string

	width     int
	height    int
	ready     bool
	statusMsg string
	err       error
}

// Err reports the fault that terminated the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Init starts the serial poll loop. A flow control setting the host
// driver cannot honor is surfaced here, where the user can see it.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.pollSerial()}
	if m.cfg.FlowControl != serialport.FlowNone {
		cmds = append(cmds, m.setStatusMessage(fmt.Sprintf(
			"%s flow control not supported, running without", m.cfg.FlowControl)))
	}
	return tea.Batch(cmds...)
}

// Update processes messages and returns commands
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.output.Width = msg.Width
		m.output.Height = msg.Height - 1 // status or prompt line
		m.prompt.Width = msg.Width - len(m.prompt.Prompt) - 1
		m.ready = true
		m.output.SetContent(string(m.received))
		m.output.GotoBottom()
		m.log.Debug("window resized",
			zap.Int("width", msg.Width),
			zap.Int("height", msg.Height))
		return m, nil

	case serialRxMsg:
		if len(msg) > 0 {
			m.received = append(m.received, msg...)
			if len(m.received) > maxScrollback {
				m.received = m.received[len(m.received)-maxScrollback:]
			}
			m.output.SetContent(string(m.received))
			m.output.GotoBottom()
		}
		return m, m.pollSerial()

	case serialErrMsg:
		m.err = msg.err
		m.log.Error("serial transport failed", zap.Error(msg.err))
		return m, tea.Quit

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}

	// Cursor blink and other prompt internals.
	if m.mode == mode.SendingFile {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// pollSerial reads one chunk from the device. A quiet poll posts an
// empty serialRxMsg, which just reschedules the next poll.
func (m *Model) pollSerial() tea.Cmd {
	return func() tea.Msg {
		buf := make([]byte, serialport.ReadBufferSize)
		n, err := m.transport.Read(buf)
		if err != nil {
			return serialErrMsg{err: err}
		}
		return serialRxMsg(buf[:n])
	}
}

// setStatusMessage shows a transient message in the status bar and
// schedules its removal.
func (m *Model) setStatusMessage(text string) tea.Cmd {
	m.statusMsg = text
	return tea.Tick(statusMessageTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Message types

// serialRxMsg carries bytes read from the device (possibly none).
type serialRxMsg []byte

// serialErrMsg reports a transport fault; it terminates the session.
type serialErrMsg struct {
	err error
}

// clearStatusMsg removes an expired status message.
type clearStatusMsg struct{}
