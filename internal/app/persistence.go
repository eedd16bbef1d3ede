package app

import (
	"github.com/jirehhuang/pipecat-assistant/internal/state"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/botaudio"
)

// savePanelState schedules a save of the current panel preferences. The
// store debounces, so calling on every toggle is fine.
func (m Model) savePanelState() {
	if m.StateMgr == nil {
		return
	}
	m.StateMgr.SavePanel(state.PanelState{
		Collapsed: m.BotAudio.Mode() == botaudio.ModeCollapsed,
		Muted:     m.Muted,
		ServerURL: m.ServerURL,
	})
}
