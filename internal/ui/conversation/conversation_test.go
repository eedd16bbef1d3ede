package conversation

import (
	"strings"
	"testing"
)

func TestAppendBotStreaming(t *testing.T) {
	m := New()
	m.SetSize(60, 20)

	m.AppendBot("Hello", false)
	m.AppendBot("there.", false)
	m.AppendBot("", true)

	msgs := m.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1 merged stream", len(msgs))
	}
	if msgs[0].Text != "Hello there." {
		t.Errorf("merged text = %q", msgs[0].Text)
	}
	if !msgs[0].Final {
		t.Error("message should be final after closing chunk")
	}

	// Next chunk opens a fresh entry.
	m.AppendBot("New thought", false)
	if len(m.Messages()) != 2 {
		t.Errorf("got %d messages, want 2", len(m.Messages()))
	}
}

func TestAppendUserInterleaved(t *testing.T) {
	m := New()
	m.SetSize(60, 20)

	m.AppendBot("partial", false)
	m.AppendUser("a question")
	m.AppendBot("answer", true)

	msgs := m.Messages()
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[1].Speaker != SpeakerUser {
		t.Error("user message lost its speaker")
	}
	// The interrupted bot stream must not swallow the later chunk.
	if msgs[2].Text != "answer" {
		t.Errorf("messages[2].Text = %q", msgs[2].Text)
	}
}

func TestEmptyAppendsIgnored(t *testing.T) {
	m := New()
	m.AppendUser("")
	m.AppendBot("", false)
	if len(m.Messages()) != 0 {
		t.Errorf("empty appends created %d messages", len(m.Messages()))
	}
}

func TestViewContainsTranscript(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.AppendUser("ping")
	m.AppendBot("pong", true)

	out := m.View()
	if !strings.Contains(out, "ping") {
		t.Error("view missing user text")
	}
	if !strings.Contains(out, "pong") {
		t.Error("view missing bot text")
	}
	if !strings.Contains(out, "Conversation") {
		t.Error("view missing header")
	}
}

func TestClear(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.AppendUser("hello")
	m.Clear()
	if len(m.Messages()) != 0 {
		t.Error("Clear left messages behind")
	}
}
