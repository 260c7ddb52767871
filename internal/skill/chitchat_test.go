package skill

import (
	"context"
	"strings"
	"testing"
)

func answerChitChat(t *testing.T, input string) string {
	t.Helper()
	c := NewChitChat()
	m, ok := c.Match(input)
	if !ok {
		t.Fatalf("Match(%q) = false, chit-chat must always match", input)
	}
	got, err := c.Answer(context.Background(), m)
	if err != nil {
		t.Fatalf("Answer(%q) error = %v", input, err)
	}
	if got == "" {
		t.Fatalf("Answer(%q) returned empty text", input)
	}
	return got
}

func TestChitChatBuckets(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello there friend", "👋"},
		{"how are you today, my friend", "Ready to help"},
		{"thank you so much friend", "welcome"},
		{"goodbye for now my friend", "Goodbye"},
		{"so what are you exactly", "Auraya"},
		{"help please now", "Here is what I can do"},
		{"время сейчас!!", "time"},
		{"i love trains and bridges", "inspires"},
	}
	for _, tc := range cases {
		got := answerChitChat(t, tc.in)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("Answer(%q) = %q, want it to contain %q", tc.in, got, tc.want)
		}
	}
}

func TestChitChatShortMessageDeterministic(t *testing.T) {
	// Selection is input length modulo variant count: same input, same reply,
	// and same-length inputs share a variant.
	first := answerChitChat(t, "ok then")
	second := answerChitChat(t, "ok then")
	if first != second {
		t.Fatalf("same input produced different replies: %q vs %q", first, second)
	}
	if want := shortReplies[len("ok then")%len(shortReplies)]; first != want {
		t.Fatalf("variant selection = %q, want %q", first, want)
	}
}

func TestChitChatLongMessageTruncates(t *testing.T) {
	long := strings.Repeat("deep topic ", 10) // > 50 bytes, no trigger words
	got := answerChitChat(t, long)
	if !strings.Contains(got, "\""+long[:40]+"\"") {
		t.Fatalf("long reply should quote the first 40 characters: %q", got)
	}
}

func TestChitChatGenericDeterministic(t *testing.T) {
	input := "bananas and pears today"
	got := answerChitChat(t, input)
	if want := genericReplies[len(input)%len(genericReplies)]; got != want {
		t.Fatalf("generic variant = %q, want %q", got, want)
	}
}
