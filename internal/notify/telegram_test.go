package notify

import "testing"

func TestEscapeMarkdownV2(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"Could not load events: 503", "Could not load events: 503"},
		{"a.b-c!d", `a\.b\-c\!d`},
		{"(brackets) [and] {braces}", `\(brackets\) \[and\] \{braces\}`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EscapeMarkdownV2(tt.input); got != tt.want {
			t.Errorf("EscapeMarkdownV2(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
