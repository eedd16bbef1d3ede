package conversation

import (
	"encoding/json"
	"testing"
)

func TestDecodeParts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty payload", "", 0},
		{"valid list", `[{"type":"text","text":"hi"},{"type":"text","text":"there"}]`, 2},
		{"non-list object", `{"type":"text","text":"hi"}`, 0},
		{"garbage", `not json at all`, 0},
		{"null", `null`, 0},
		{"non-text parts filtered", `[{"type":"image","text":"x"},{"type":"text","text":"ok"}]`, 1},
		{"empty text filtered", `[{"type":"text","text":""}]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeParts(json.RawMessage(tt.raw))
			if len(got) != tt.want {
				t.Errorf("DecodeParts(%q) returned %d parts, want %d", tt.raw, len(got), tt.want)
			}
		})
	}
}

func TestPartsText(t *testing.T) {
	parts := []Part{
		{Type: "text", Text: "first"},
		{Type: "text", Text: "second"},
	}
	if got := PartsText(parts); got != "first\n\nsecond" {
		t.Errorf("PartsText() = %q", got)
	}
	if got := PartsText(nil); got != "" {
		t.Errorf("PartsText(nil) = %q, want empty", got)
	}
}
