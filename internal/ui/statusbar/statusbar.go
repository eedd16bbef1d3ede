// Package statusbar renders the single-line top bar: app name, connection
// state, sleep indicator, and key hints.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jirehhuang/pipecat-assistant/internal/icons"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/render"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/styles"
)

// Height is the fixed height of the status bar (single line).
const Height = 1

// ConnState is the connection state shown in the bar.
type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
	StateReconnecting
)

var (
	hintKeyStyle  = lipgloss.NewStyle().Foreground(styles.T().FgMuted)
	hintNameStyle = lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
)

// hint is one key hint in the right section.
type hint struct {
	key  string
	name string
}

var hints = []hint{
	{"m", "mute"},
	{"v", "view"},
	{"i", "type"},
	{"q", "quit"},
}

// Render returns the status bar string for the given width.
func Render(state ConnState, asleep bool, width int) string {
	if width < 20 {
		return ""
	}

	name := styles.ApplyBoldGradient("pipecat", styles.T().VisLow, styles.T().VisHigh)
	left := " " + name + "  " + renderState(state, asleep)

	right := renderHints() + " "
	return render.Row(left, right, width)
}

func renderState(state ConnState, asleep bool) string {
	s := styles.T().S()
	var out string
	switch state {
	case StateConnected:
		out = s.Success.Render(icons.Connected() + " connected")
	case StateConnecting:
		out = s.Warning.Render(icons.Disconnected() + " connecting")
	case StateReconnecting:
		out = s.Warning.Render(icons.Disconnected() + " reconnecting")
	default:
		out = s.Error.Render(icons.Disconnected() + " disconnected")
	}
	if asleep {
		out += "  " + s.Warning.Render(icons.Sleeping()+" asleep")
	}
	return out
}

func renderHints() string {
	var out string
	for i, h := range hints {
		if i > 0 {
			out += "  "
		}
		out += hintKeyStyle.Render(h.key) + " " + hintNameStyle.Render(h.name)
	}
	return out
}
