package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jirehhuang/pipecat-assistant/internal/client"
	"github.com/jirehhuang/pipecat-assistant/internal/errmsg"
	"github.com/jirehhuang/pipecat-assistant/internal/track"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/botaudio"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/conversation"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/statusbar"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case ServerEventMsg:
		return m.handleServerEvent(client.Envelope(msg))

	case EventsClosedMsg:
		m.ConnState = statusbar.StateDisconnected
		return m, nil

	case muteToggleRequestMsg:
		return m, m.setMuteCmd(!m.Muted)

	case commandErrMsg:
		m.ErrorMsg = errmsg.Format(msg.op, msg.err)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.Conversation, cmd = m.Conversation.Update(msg)
	return m, cmd
}

func (m Model) handleServerEvent(ev client.Envelope) (tea.Model, tea.Cmd) {
	switch ev.Type {
	case client.EventConnected:
		m.ConnState = statusbar.StateConnected
		m.ErrorMsg = ""
		m.resize()

	case client.EventReconnecting:
		m.ConnState = statusbar.StateReconnecting

	case client.EventDisconnected:
		m.ConnState = statusbar.StateDisconnected

	case client.EventBotAudioStart:
		m.Tracks.Add(track.New(track.KindAudio, track.RoleBot))

	case client.EventBotAudioStop:
		m.Tracks.Remove(track.KindAudio, track.RoleBot)

	case client.EventAudioLevel:
		if tr := m.Tracks.Lookup(track.KindAudio, track.RoleBot); tr != nil {
			tr.Push(ev.Level)
		}

	case client.EventBotAudioMute:
		m.Muted = ev.Muted
		m.BotAudio.SetMuted(ev.Muted)
		m.savePanelState()

	case client.EventBotTranscript:
		m.Conversation.AppendBot(transcriptText(ev), ev.Final)

	case client.EventUserTranscript:
		if ev.Final {
			m.Conversation.AppendUser(transcriptText(ev))
		}

	case client.EventSleepState:
		m.Asleep = ev.Asleep

	case client.EventError:
		m.ErrorMsg = ev.Error
		m.resize()
	}

	return m, m.waitForServerEvent()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.InputActive {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()

	case "m":
		var cmd tea.Cmd
		m.BotAudio, cmd = m.BotAudio.Update(msg)
		return m, cmd

	case "v":
		m.toggleCollapsed()
		return m, nil

	case "i":
		m.InputActive = true
		m.Conversation.SetFocused(false)
		m.resize()
		return m, m.Input.Focus()
	}

	var cmd tea.Cmd
	m.Conversation, cmd = m.Conversation.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil

	case "enter":
		text := strings.TrimSpace(m.Input.Value())
		m.closeInput()
		if text == "" {
			return m, nil
		}
		m.Conversation.AppendUser(text)
		return m, m.sendTextCmd(text)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.Input.Reset()
	m.Input.Blur()
	m.InputActive = false
	m.Conversation.SetFocused(true)
	m.resize()
}

func (m *Model) toggleCollapsed() {
	if m.BotAudio.Mode() == botaudio.ModeExpanded {
		m.BotAudio.SetMode(botaudio.ModeCollapsed)
	} else {
		m.BotAudio.SetMode(botaudio.ModeExpanded)
	}
	m.savePanelState()
	m.resize()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.savePanelState()
	m.BotAudio.Close()
	_ = m.Conn.Close()
	return m, tea.Quit
}

// transcriptText prefers the structured parts payload over the flat text
// field.
func transcriptText(ev client.Envelope) string {
	if text := conversation.PartsText(conversation.DecodeParts(ev.Parts)); text != "" {
		return text
	}
	return ev.Text
}
