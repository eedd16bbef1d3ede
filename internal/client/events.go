package client

import "encoding/json"

// Wire event types received from the assistant server.
const (
	EventBotReady       = "bot-ready"
	EventBotAudioStart  = "bot-audio-started"
	EventBotAudioStop   = "bot-audio-stopped"
	EventAudioLevel     = "audio-level"
	EventBotTranscript  = "bot-transcript"
	EventUserTranscript = "user-transcript"
	EventBotAudioMute   = "bot-audio-mute"
	EventSleepState     = "sleep-state"
	EventError          = "error"
)

// Wire command types sent to the assistant server. SetBotAudioMute mirrors
// the server's set_bot_audio_mute function.
const (
	CmdSetBotAudioMute = "set-bot-audio-mute"
	CmdTextMessage     = "text-message"
)

// Synthetic event types emitted locally to report connection state. Never on
// the wire.
const (
	EventConnected    = "connected"
	EventDisconnected = "disconnected"
	EventReconnecting = "reconnecting"
)

// Envelope is the wire frame for every event in both directions. Unused
// fields stay at their zero values.
type Envelope struct {
	Type   string  `json:"type"`
	Level  float64 `json:"level,omitempty"`
	Muted  bool    `json:"muted,omitempty"`
	Asleep bool    `json:"asleep,omitempty"`
	Text   string  `json:"text,omitempty"`
	Final  bool    `json:"final,omitempty"`
	Error  string  `json:"error,omitempty"`

	// Parts carries the optional structured message payload for transcript
	// events. Decoded lazily by the conversation view; malformed payloads
	// degrade to an empty part list there.
	Parts json.RawMessage `json:"parts,omitempty"`
}
