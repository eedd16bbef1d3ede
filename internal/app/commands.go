package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jirehhuang/pipecat-assistant/internal/errmsg"
)

// waitForServerEvent returns a command that blocks on the client event
// channel and converts the next envelope to a message. Re-issued after each
// event so the stream keeps draining.
func (m Model) waitForServerEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.Conn.Events()
		if !ok {
			return EventsClosedMsg{}
		}
		return ServerEventMsg(ev)
	}
}

// setMuteCmd asks the server for the given mute state. The panel state only
// flips when the authoritative bot-audio-mute event comes back.
func (m Model) setMuteCmd(muted bool) tea.Cmd {
	return func() tea.Msg {
		if err := m.Conn.SetBotMuted(muted); err != nil {
			return commandErrMsg{errmsg.OpMuteBot, err}
		}
		return nil
	}
}

func (m Model) sendTextCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := m.Conn.SendText(text); err != nil {
			return commandErrMsg{errmsg.OpSendText, err}
		}
		return nil
	}
}
