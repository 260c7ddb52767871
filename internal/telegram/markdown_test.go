package telegram

import (
	"strings"
	"testing"
)

func TestSplitMessageShort(t *testing.T) {
	parts := SplitMessage("hello", 10)
	if len(parts) != 1 || parts[0] != "hello" {
		t.Fatalf("SplitMessage() = %v", parts)
	}
}

func TestSplitMessagePrefersNewline(t *testing.T) {
	text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 8)
	parts := SplitMessage(text, 10)
	if len(parts) != 2 {
		t.Fatalf("SplitMessage() = %d parts, want 2", len(parts))
	}
	if !strings.HasSuffix(parts[0], "\n") {
		t.Fatalf("first part should end at the newline: %q", parts[0])
	}
	if parts[1] != strings.Repeat("b", 8) {
		t.Fatalf("second part = %q", parts[1])
	}
}

func TestSplitMessageLossless(t *testing.T) {
	text := strings.Repeat("пример текста на русском\n", 40)
	parts := SplitMessage(text, 100)
	if got := strings.Join(parts, ""); got != text {
		t.Fatalf("SplitMessage() lost content: %d bytes vs %d", len(got), len(text))
	}
	for i, p := range parts {
		if n := len([]rune(p)); n > 100 {
			t.Fatalf("part %d is %d runes, want <= 100", i, n)
		}
	}
}

func TestFixMarkdown(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"open `code", "open `code`"},
		{"balanced `code`", "balanced `code`"},
		{"```go\nfmt.Println()", "```go\nfmt.Println()\n```"},
		{"```x``` and `y`", "```x``` and `y`"},
	}
	for _, tc := range cases {
		if got := FixMarkdown(tc.in); got != tc.want {
			t.Fatalf("FixMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
