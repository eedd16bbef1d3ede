package app

import (
	"github.com/jirehhuang/pipecat-assistant/internal/ui/botaudio"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/statusbar"
)

// resize fans the current terminal size out to the panels. The status bar
// takes one row, the input line one more when active, and the error line one
// when an error is showing; the bot audio panel takes its share of the rest
// and the conversation gets the remainder.
func (m *Model) resize() {
	contentH := m.Height - statusbar.Height
	if m.InputActive {
		contentH--
	}
	if m.ErrorMsg != "" {
		contentH--
	}
	if contentH < 0 {
		contentH = 0
	}

	panelH := m.botAudioHeight(contentH)
	m.BotAudio.SetSize(m.Width, panelH)
	m.Conversation.SetSize(m.Width, contentH-panelH)
	m.Input.Width = max(m.Width-4, 0)
}

// botAudioHeight allocates rows to the bot audio panel: roughly a third of
// the content area when expanded, a compact strip when collapsed.
func (m Model) botAudioHeight(contentH int) int {
	if m.BotAudio.Mode() == botaudio.ModeCollapsed {
		return min(max(contentH/5, 4), 7)
	}
	return min(max(contentH/3, 8), 14)
}
