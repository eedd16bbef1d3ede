package app

import (
	"github.com/jirehhuang/pipecat-assistant/internal/client"
	"github.com/jirehhuang/pipecat-assistant/internal/state"
)

// Connection is the server connection surface the app depends on.
// *client.Client satisfies it; tests use a fake.
type Connection interface {
	Events() <-chan client.Envelope
	SetBotMuted(muted bool) error
	SendText(text string) error
	Close() error
}

// StateStore persists panel preferences across runs. *state.Manager
// satisfies it.
type StateStore interface {
	GetPanel() (*state.PanelState, error)
	SavePanel(state.PanelState)
}
