package skill

import (
	"context"
	"strings"
	"testing"
)

func TestIsExpression(t *testing.T) {
	positive := []string{
		"2 + 2 * 3",
		"5 плюс 3",
		"sqrt(16) + 1",
		"10 mod 3",
		"2^10",
	}
	for _, in := range positive {
		if !IsExpression(in) {
			t.Fatalf("IsExpression(%q) = false, want true", in)
		}
	}

	negative := []string{
		"what is rust",
		"hello there",
		"sqrt of love", // operator word but no digit
	}
	for _, in := range negative {
		if IsExpression(in) {
			t.Fatalf("IsExpression(%q) = true, want false", in)
		}
	}
}

func TestCleanExpression(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2 + 2 * 3", "2+2*3"},
		{"5 плюс 3", "5+3"},
		{"5 plus 3", "5+3"},
		{"2^10", "2**10"},
		{"10 mod 3", "10%3"},
		{"sqrt(16)", "sqrt(16)"},
	}
	for _, tc := range cases {
		if got := CleanExpression(tc.in); got != tc.want {
			t.Fatalf("CleanExpression(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMathAnswer(t *testing.T) {
	m := NewMath()

	match, ok := m.Match("2 + 2 * 3")
	if !ok {
		t.Fatalf("Match() = false")
	}
	got, err := m.Answer(context.Background(), match)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !strings.Contains(got, "8") {
		t.Fatalf("Answer() = %q, want it to contain 8", got)
	}
}

func TestMathAnswerVerbalRussian(t *testing.T) {
	m := NewMath()

	match, ok := m.Match("5 плюс 3")
	if !ok {
		t.Fatalf("Match() = false")
	}
	got, err := m.Answer(context.Background(), match)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !strings.Contains(got, "8") {
		t.Fatalf("Answer() = %q, want it to contain 8", got)
	}
}

func TestMathAnswerFraction(t *testing.T) {
	m := NewMath()

	match, _ := m.Match("7 / 2")
	got, err := m.Answer(context.Background(), match)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !strings.Contains(got, "3.5") {
		t.Fatalf("Answer() = %q, want it to contain 3.5", got)
	}
}

func TestMathFallbackOnGarbage(t *testing.T) {
	m := NewMath()

	match, ok := m.Match("2 + + )")
	if !ok {
		t.Fatalf("Match() = false, want true for operator+digit input")
	}
	if _, err := m.Answer(context.Background(), match); err == nil {
		t.Fatalf("Answer() should fail on a malformed expression")
	}
	fallback := m.Fallback(match, nil)
	if !strings.Contains(fallback, "Cannot compute") {
		t.Fatalf("Fallback() = %q", fallback)
	}
}
