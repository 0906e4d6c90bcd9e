package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/ttycli/internal/mode"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	statusModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("55")).
			Bold(true)

	promptHintStyle = lipgloss.NewStyle().
			Faint(true)
)

// View renders the current state to the terminal
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.output.View())
	b.WriteString("\n")

	if m.mode == mode.SendingFile {
		b.WriteString(m.renderSendPrompt())
		return b.String()
	}

	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderStatusBar shows the device, line settings and current mode,
// plus any transient status message.
func (m *Model) renderStatusBar() string {
	modeLabel := statusModeStyle.Render(fmt.Sprintf(" %s ", m.mode))
	line := fmt.Sprintf(" %s  %s ", m.device, m.cfg.Describe())

	if m.mode == mode.WaitingCommand {
		line += " q:quit  s:send  r:receive "
	}
	if m.statusMsg != "" {
		line += " " + m.statusMsg
	}

	bar := modeLabel + statusBarStyle.Render(line)
	if m.width > 0 && lipgloss.Width(bar) > m.width {
		bar = lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
	}
	return bar
}

// renderSendPrompt shows the path prompt with the working directory
// hint, matching the transfer dialog layout.
func (m *Model) renderSendPrompt() string {
	return m.prompt.View() + promptHintStyle.Render("  PWD: "+m.workdir)
}
