package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "with multiple codes",
			input: "\x1b[1;32mbold green\x1b[0m",
			want:  "bold green",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31mred\x1b[0m"); got != 3 {
		t.Errorf("MeasureWidth(styled) = %d, want 3", got)
	}
	if got := MeasureWidth("日本"); got != 4 {
		t.Errorf("MeasureWidth(wide runes) = %d, want 4", got)
	}
}

func TestContainsLine(t *testing.T) {
	output := "line one\nline two\nline three"

	if !ContainsLine(output, "two") {
		t.Error("should find 'two' in output")
	}
	if ContainsLine(output, "four") {
		t.Error("should not find 'four' in output")
	}
}

func TestFindLine(t *testing.T) {
	output := "first line\nsecond line\nthird line"

	got := FindLine(output, "second")
	if got != "second line" {
		t.Errorf("FindLine() = %q, want %q", got, "second line")
	}

	got = FindLine(output, "missing")
	if got != "" {
		t.Errorf("FindLine() for missing = %q, want empty", got)
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "three lines",
			input: "one\ntwo\nthree",
			want:  3,
		},
		{
			name:  "with empty lines",
			input: "one\n\nthree\n",
			want:  2,
		},
		{
			name:  "empty input",
			input: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountLines(tt.input)
			if got != tt.want {
				t.Errorf("CountLines(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
