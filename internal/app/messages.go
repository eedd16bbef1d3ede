package app

import (
	"github.com/jirehhuang/pipecat-assistant/internal/client"
	"github.com/jirehhuang/pipecat-assistant/internal/errmsg"
)

// ServerEventMsg carries one envelope from the client event stream.
type ServerEventMsg client.Envelope

// EventsClosedMsg signals that the client event stream ended for good.
type EventsClosedMsg struct{}

// muteToggleRequestMsg is emitted by the bot audio panel's mute control.
type muteToggleRequestMsg struct{}

// commandErrMsg reports a failed outbound command.
type commandErrMsg struct {
	op  errmsg.Op
	err error
}
