package skill

import (
	"context"
	"strings"
	"testing"

	"github.com/auraya-bot/auraya/internal/domain"
)

func TestEncyclopediaMatch(t *testing.T) {
	e := NewEncyclopedia(&fakeEncyclopedia{})

	if _, ok := e.Match("What is Rust?"); !ok {
		t.Fatalf("Match(what is) = false")
	}
	if _, ok := e.Match("Привет, что такое ИИ?"); !ok {
		t.Fatalf("Match(что такое) = false")
	}
	if _, ok := e.Match("tell me a joke"); ok {
		t.Fatalf("Match(joke) = true, want false")
	}
}

func TestEncyclopediaAnswer(t *testing.T) {
	client := &fakeEncyclopedia{summary: "📖 **Rust**\n\nRust is a language."}
	e := NewEncyclopedia(client)

	m, _ := e.Match("What is Rust?")
	got, err := e.Answer(context.Background(), m)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !strings.Contains(got, "Rust is a language.") {
		t.Fatalf("Answer() = %q", got)
	}
	if client.calls != 1 {
		t.Fatalf("collaborator called %d times, want 1", client.calls)
	}
}

func TestEncyclopediaFallbackKeyed(t *testing.T) {
	e := NewEncyclopedia(&fakeEncyclopedia{err: domain.ErrProviderUnavailable})

	cases := []struct {
		query string
		want  string
	}{
		{"What is Rust?", "Rust"},
		{"What is AI?", "Artificial intelligence"},
		{"что такое программирование", "Programming"},
		{"What is a platypus?", "Interesting question"},
	}
	for _, tc := range cases {
		m, ok := e.Match(tc.query)
		if !ok {
			t.Fatalf("Match(%q) = false", tc.query)
		}
		got := e.Fallback(m, domain.ErrProviderUnavailable)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("Fallback(%q) = %q, want it to contain %q", tc.query, got, tc.want)
		}
	}
}
