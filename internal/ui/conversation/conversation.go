// Package conversation renders the transcript panel: user messages as plain
// text, bot messages through a markdown renderer. Markdown semantics are
// fully delegated to glamour.
package conversation

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jirehhuang/pipecat-assistant/internal/icons"
	"github.com/jirehhuang/pipecat-assistant/internal/ui"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/render"
	"github.com/jirehhuang/pipecat-assistant/internal/ui/styles"
)

// Speaker identifies who produced a message.
type Speaker int

const (
	SpeakerUser Speaker = iota
	SpeakerBot
)

// Message is one transcript entry. Bot messages stream in chunks; Final
// marks the message complete so the next chunk starts a fresh entry.
type Message struct {
	Speaker Speaker
	Text    string
	Final   bool
}

// Model is the conversation panel.
type Model struct {
	vp       viewport.Model
	md       *glamour.TermRenderer
	messages []Message
	width    int
	height   int
	focused  bool
}

// New creates an empty conversation panel.
func New() Model {
	return Model{vp: viewport.New(0, 0)}
}

// SetFocused sets whether the panel receives scroll keys.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetSize sets the panel dimensions and rebuilds the markdown renderer for
// the new wrap width.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.vp.Width = max(width-ui.BorderWidth, 0)
	m.vp.Height = max(height-ui.PanelOverhead, 0)

	// Word wrap is fixed per renderer, so resizing means a new one.
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.vp.Width),
	)
	if err == nil {
		m.md = md
	}
	m.refresh()
}

// Messages returns the transcript entries.
func (m Model) Messages() []Message {
	return m.messages
}

// AppendUser adds a user message.
func (m *Model) AppendUser(text string) {
	if text == "" {
		return
	}
	m.messages = append(m.messages, Message{Speaker: SpeakerUser, Text: text, Final: true})
	m.refresh()
	m.vp.GotoBottom()
}

// AppendBot adds or extends the streaming bot message. Chunks accumulate in
// the last entry until one arrives with final set; the next chunk then opens
// a new entry.
func (m *Model) AppendBot(text string, final bool) {
	if text == "" && !final {
		return
	}
	if n := len(m.messages); n > 0 {
		last := &m.messages[n-1]
		if last.Speaker == SpeakerBot && !last.Final {
			if text != "" {
				if last.Text != "" {
					last.Text += " "
				}
				last.Text += text
			}
			last.Final = final
			m.refresh()
			m.vp.GotoBottom()
			return
		}
	}
	m.messages = append(m.messages, Message{Speaker: SpeakerBot, Text: text, Final: final})
	m.refresh()
	m.vp.GotoBottom()
}

// Clear drops the transcript.
func (m *Model) Clear() {
	m.messages = nil
	m.refresh()
}

// Update forwards scroll keys to the viewport when focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !m.focused {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View renders the panel.
func (m Model) View() string {
	if m.width < ui.MinPanelWidth || m.height < ui.BorderHeight+1 {
		return ""
	}
	innerW := max(m.width-ui.BorderWidth, 0)

	header := headerStyle.Render("Conversation")
	sections := []string{
		render.TruncateAndPad(header, innerW),
		render.Separator(innerW),
		m.vp.View(),
	}

	return styles.PanelStyle(m.focused).
		Width(innerW).
		Render(strings.Join(sections, "\n"))
}

// refresh rebuilds the viewport content from the transcript.
func (m *Model) refresh() {
	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg))
	}
	m.vp.SetContent(b.String())
}

func (m *Model) renderMessage(msg Message) string {
	switch msg.Speaker {
	case SpeakerBot:
		return botPrefixStyle.Render(icons.Bot()) + "\n" + m.renderMarkdown(msg.Text)
	default:
		return userPrefixStyle.Render(icons.User()) + " " + render.Sanitize(msg.Text)
	}
}

// renderMarkdown renders bot text through glamour, falling back to the raw
// text when rendering fails.
func (m *Model) renderMarkdown(text string) string {
	if m.md == nil {
		return render.Sanitize(text)
	}
	out, err := m.md.Render(text)
	if err != nil {
		return render.Sanitize(text)
	}
	return strings.TrimRight(out, "\n")
}
