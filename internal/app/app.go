// Package app wires the assistant client, track registry, and UI panels into
// the root bubbletea model.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jirehhuang/pipecat-assistant/internal/config"
	"github.com/jirehhuang/pipecat-assistant/internal/track"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/botaudio"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/conversation"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/statusbar"
)

// Model is the root application model containing all state.
type Model struct {
	Conn     Connection
	StateMgr StateStore
	Tracks   *track.Registry

	BotAudio     botaudio.Model
	Conversation conversation.Model
	Input        textinput.Model
	InputActive  bool

	ConnState statusbar.ConnState
	Asleep    bool
	Muted     bool
	ServerURL string
	ErrorMsg  string

	Width  int
	Height int
}

// New creates the application model from configuration. Saved panel
// preferences override config defaults when present.
func New(cfg *config.Config, conn Connection, stateMgr StateStore) Model {
	tracks := track.NewRegistry()

	panel := botaudio.New(tracks)
	if cfg.HasMuteControl() {
		panel.SetMuteToggle(func() tea.Msg { return muteToggleRequestMsg{} })
	}

	collapsed := cfg.Panel.Collapsed
	if stateMgr != nil {
		if saved, err := stateMgr.GetPanel(); err == nil && saved != nil {
			collapsed = saved.Collapsed
		}
	}
	if collapsed {
		panel.SetMode(botaudio.ModeCollapsed)
	}

	input := textinput.New()
	input.Placeholder = "Type a message"
	input.Prompt = "> "
	input.CharLimit = 500

	conv := conversation.New()
	conv.SetFocused(true)

	return Model{
		Conn:         conn,
		StateMgr:     stateMgr,
		Tracks:       tracks,
		BotAudio:     panel,
		Conversation: conv,
		Input:        input,
		ConnState:    statusbar.StateConnecting,
		ServerURL:    cfg.ServerURL,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForServerEvent()
}
