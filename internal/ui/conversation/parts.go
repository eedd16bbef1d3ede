package conversation

import (
	"encoding/json"
	"strings"
)

// Part is one segment of a structured message payload.
type Part struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// DecodeParts decodes the optional parts payload of a transcript event.
// Malformed or non-list payloads decode to nil rather than an error; the
// message then falls back to its plain text field.
func DecodeParts(raw json.RawMessage) []Part {
	if len(raw) == 0 {
		return nil
	}
	var parts []Part
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil
	}
	out := parts[:0]
	for _, p := range parts {
		if p.Type == "text" && p.Text != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// PartsText flattens text parts into a single string.
func PartsText(parts []Part) string {
	if len(parts) == 0 {
		return ""
	}
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n\n")
}
