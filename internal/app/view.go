package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jirehhuang/pipecat-assistant/internal/ui/statusbar"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/styles"
)

var errorStyle = lipgloss.NewStyle().Foreground(styles.T().Error)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	sections := []string{
		statusbar.Render(m.ConnState, m.Asleep, m.Width),
		m.BotAudio.View(),
		m.Conversation.View(),
	}

	if m.InputActive {
		sections = append(sections, " "+m.Input.View())
	}
	if m.ErrorMsg != "" {
		sections = append(sections, " "+errorStyle.Render(m.ErrorMsg))
	}

	return strings.Join(sections, "\n")
}
