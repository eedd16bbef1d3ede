package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jirehhuang/pipecat-assistant/internal/client"
	"github.com/jirehhuang/pipecat-assistant/internal/config"
	"github.com/jirehhuang/pipecat-assistant/internal/state"
	"github.com/jirehhuang/pipecat-assistant/internal/track"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/botaudio"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/statusbar"
)

type fakeConn struct {
	events    chan client.Envelope
	muteCalls []bool
	sentTexts []string
	closed    bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{events: make(chan client.Envelope, 8)}
}

func (f *fakeConn) Events() <-chan client.Envelope { return f.events }

func (f *fakeConn) SetBotMuted(muted bool) error {
	f.muteCalls = append(f.muteCalls, muted)
	return nil
}

func (f *fakeConn) SendText(text string) error {
	f.sentTexts = append(f.sentTexts, text)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

type fakeStore struct {
	saved  []state.PanelState
	stored *state.PanelState
}

func (f *fakeStore) GetPanel() (*state.PanelState, error) { return f.stored, nil }
func (f *fakeStore) SavePanel(s state.PanelState)         { f.saved = append(f.saved, s) }

func newTestModel(t *testing.T, conn *fakeConn, store *fakeStore) Model {
	t.Helper()

	cfg := &config.Config{ServerURL: "ws://test/ws"}
	m := New(cfg, conn, store)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model)
}

// apply runs one message through Update and returns the model and command.
func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func serverEvent(ev client.Envelope) ServerEventMsg {
	return ServerEventMsg(ev)
}

func TestNewAppliesSavedPanelState(t *testing.T) {
	store := &fakeStore{stored: &state.PanelState{Collapsed: true}}
	m := newTestModel(t, newFakeConn(), store)

	if m.BotAudio.Mode() != botaudio.ModeCollapsed {
		t.Error("saved collapsed preference not applied")
	}
}

func TestConnectionStateEvents(t *testing.T) {
	m := newTestModel(t, newFakeConn(), &fakeStore{})

	if m.ConnState != statusbar.StateConnecting {
		t.Fatalf("initial state = %v, want connecting", m.ConnState)
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventConnected}))
	if m.ConnState != statusbar.StateConnected {
		t.Error("connected event not reflected")
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventReconnecting}))
	if m.ConnState != statusbar.StateReconnecting {
		t.Error("reconnecting event not reflected")
	}

	m, _ = apply(t, m, EventsClosedMsg{})
	if m.ConnState != statusbar.StateDisconnected {
		t.Error("closed event stream should read as disconnected")
	}
}

func TestAudioTrackLifecycle(t *testing.T) {
	m := newTestModel(t, newFakeConn(), &fakeStore{})

	if m.BotAudio.HasTrack() {
		t.Fatal("no track expected before audio starts")
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventBotAudioStart}))
	if !m.BotAudio.HasTrack() {
		t.Fatal("track expected after bot-audio-started")
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventAudioLevel, Level: 0.8}))
	tr := m.Tracks.Lookup(track.KindAudio, track.RoleBot)
	if tr == nil || tr.Level() != 0.8 {
		t.Error("audio level not pushed to track")
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventBotAudioStop}))
	if m.BotAudio.HasTrack() {
		t.Error("track should be removed after bot-audio-stopped")
	}
}

func TestMuteRoundtrip(t *testing.T) {
	conn := newFakeConn()
	store := &fakeStore{}
	m := newTestModel(t, conn, store)

	// mute key is inert without a live track
	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if cmd != nil {
		t.Fatal("mute key should be inert without a track")
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventBotAudioStart}))

	m, cmd = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if cmd == nil {
		t.Fatal("mute key should emit the toggle request")
	}
	m, cmd = apply(t, m, cmd())
	if cmd == nil {
		t.Fatal("toggle request should produce the server command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("server command failed: %v", msg)
	}
	if len(conn.muteCalls) != 1 || !conn.muteCalls[0] {
		t.Fatalf("muteCalls = %v, want [true]", conn.muteCalls)
	}
	if m.Muted {
		t.Error("mute state must not flip before the server confirms")
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventBotAudioMute, Muted: true}))
	if !m.Muted {
		t.Error("server mute confirmation not applied")
	}
	if len(store.saved) == 0 || !store.saved[len(store.saved)-1].Muted {
		t.Error("confirmed mute state not persisted")
	}
}

func TestToggleCollapsedPersists(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, newFakeConn(), store)

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	if m.BotAudio.Mode() != botaudio.ModeCollapsed {
		t.Fatal("v should collapse the panel")
	}
	if len(store.saved) == 0 || !store.saved[len(store.saved)-1].Collapsed {
		t.Error("collapsed preference not persisted")
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	if m.BotAudio.Mode() != botaudio.ModeExpanded {
		t.Error("second v should expand the panel again")
	}
}

func TestTypedMessageFlow(t *testing.T) {
	conn := newFakeConn()
	m := newTestModel(t, conn, &fakeStore{})

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if !m.InputActive {
		t.Fatal("i should activate the input")
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.InputActive {
		t.Error("enter should close the input")
	}
	if cmd == nil {
		t.Fatal("enter with text should produce a send command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("send command failed: %v", msg)
	}
	if len(conn.sentTexts) != 1 || conn.sentTexts[0] != "hello" {
		t.Fatalf("sentTexts = %v, want [hello]", conn.sentTexts)
	}

	msgs := m.Conversation.Messages()
	if len(msgs) != 1 || msgs[0].Text != "hello" {
		t.Errorf("typed message not appended locally: %v", msgs)
	}
}

func TestInputEscapeCancels(t *testing.T) {
	conn := newFakeConn()
	m := newTestModel(t, conn, &fakeStore{})

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("draft")})
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.InputActive {
		t.Error("esc should deactivate the input")
	}
	if len(conn.sentTexts) != 0 {
		t.Error("esc must not send the draft")
	}

	// while the input is active, q types instead of quitting
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		t.Error("q inside the input must not quit")
	}
	if m.Input.Value() != "q" {
		t.Errorf("Input.Value() = %q, want q", m.Input.Value())
	}
}

func TestTranscriptEvents(t *testing.T) {
	m := newTestModel(t, newFakeConn(), &fakeStore{})

	m, _ = apply(t, m, serverEvent(client.Envelope{
		Type: client.EventBotTranscript, Text: "Hello", Final: false,
	}))
	m, _ = apply(t, m, serverEvent(client.Envelope{
		Type: client.EventBotTranscript, Text: "there.", Final: true,
	}))
	m, _ = apply(t, m, serverEvent(client.Envelope{
		Type: client.EventUserTranscript, Text: "partial", Final: false,
	}))
	m, _ = apply(t, m, serverEvent(client.Envelope{
		Type: client.EventUserTranscript, Text: "hi bot", Final: true,
	}))

	msgs := m.Conversation.Messages()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2 (streamed bot + final user)", len(msgs))
	}
	if msgs[0].Text != "Hello there." {
		t.Errorf("bot chunks not merged: %q", msgs[0].Text)
	}
	if msgs[1].Text != "hi bot" {
		t.Errorf("non-final user transcript leaked: %q", msgs[1].Text)
	}
}

func TestSleepAndErrorEvents(t *testing.T) {
	m := newTestModel(t, newFakeConn(), &fakeStore{})

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventSleepState, Asleep: true}))
	if !m.Asleep {
		t.Error("sleep state not applied")
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventError, Error: "pipeline stalled"}))
	if m.ErrorMsg != "pipeline stalled" {
		t.Error("error event not surfaced")
	}

	m, _ = apply(t, m, serverEvent(client.Envelope{Type: client.EventConnected}))
	if m.ErrorMsg != "" {
		t.Error("reconnect should clear the error")
	}
}

func TestQuitClosesConnection(t *testing.T) {
	conn := newFakeConn()
	store := &fakeStore{}
	m := newTestModel(t, conn, store)

	_, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should produce the quit command")
	}
	if !conn.closed {
		t.Error("quit should close the connection")
	}
	if len(store.saved) == 0 {
		t.Error("quit should persist panel state")
	}
}
