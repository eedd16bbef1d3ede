package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Mic          string
	MicMuted     string
	Volume       string
	VolumeMute   string
	Bot          string
	User         string
	Connected    string
	Disconnected string
	Sleeping     string
}

var (
	nerdIcons = Icons{
		Mic:          "", // nf-fa-microphone
		MicMuted:     "", // nf-fa-microphone_slash
		Volume:       "", // nf-fa-volume_up
		VolumeMute:   "", // nf-fa-volume_off
		Bot:          "󰚩",      // nf-md-robot
		User:         "", // nf-fa-user
		Connected:    "󰌘",      // nf-md-link_variant
		Disconnected: "󰌙",      // nf-md-link_variant_off
		Sleeping:     "󰒲",      // nf-md-sleep
	}

	unicodeIcons = Icons{
		Mic:          "🎤",
		MicMuted:     "🎙",
		Volume:       "🔊",
		VolumeMute:   "🔇",
		Bot:          "🤖",
		User:         "👤",
		Connected:    "●",
		Disconnected: "○",
		Sleeping:     "💤",
	}

	noneIcons = Icons{
		Mic:          "[mic]",
		MicMuted:     "[mic off]",
		Volume:       "[on]",
		VolumeMute:   "[off]",
		Bot:          "bot",
		User:         "you",
		Connected:    "*",
		Disconnected: "-",
		Sleeping:     "zzz",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Mic returns the live microphone icon.
func Mic() string {
	return current.Mic
}

// MicMuted returns the muted microphone icon, also used as the no-audio
// placeholder.
func MicMuted() string {
	return current.MicMuted
}

// Volume returns the unmuted speaker icon.
func Volume() string {
	return current.Volume
}

// VolumeMute returns the muted speaker icon.
func VolumeMute() string {
	return current.VolumeMute
}

// Bot returns the assistant speaker icon.
func Bot() string {
	return current.Bot
}

// User returns the human speaker icon.
func User() string {
	return current.User
}

// Connected returns the connection-up indicator.
func Connected() string {
	return current.Connected
}

// Disconnected returns the connection-down indicator.
func Disconnected() string {
	return current.Disconnected
}

// Sleeping returns the assistant sleep-mode indicator.
func Sleeping() string {
	return current.Sleeping
}
