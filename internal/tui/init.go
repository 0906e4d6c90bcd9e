package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/ttycli/internal/mode"
	"github.com/studiowebux/ttycli/internal/pathcomplete"
	"github.com/studiowebux/ttycli/internal/serialport"
)

// New creates a session model driving the given transport.
func New(transport serialport.Transport, device string, cfg serialport.Config, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	prompt := textinput.New()
	prompt.Prompt = "Send: "
	prompt.CharLimit = 0

	workdir, err := os.Getwd()
	if err != nil {
		workdir = "?"
	}

	return &Model{
		transport: transport,
		device:    device,
		cfg:       cfg,
		log:       log,
		mode:      mode.WaitingInput,
		output:    viewport.New(80, 24),
		prompt:    prompt,
		completer: pathcomplete.FilePath{},
		workdir:   workdir,
	}
}

// Run drives the session until the user quits or the transport fails.
// The alternate screen and raw mode are acquired here and released by
// the Bubble Tea program on every exit path, panics included.
func Run(transport serialport.Transport, device string, cfg serialport.Config, log *zap.Logger) error {
	m := New(transport, device, cfg, log)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return &HostInputError{Err: err}
	}
	if fm, ok := final.(*Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
