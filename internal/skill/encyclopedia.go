package skill

import (
	"context"
	"strings"
)

// Encyclopedia answers "what is X" questions via the encyclopedic lookup
// collaborator, with a small set of built-in topic summaries as offline
// fallback.
type Encyclopedia struct {
	client EncyclopediaClient
}

func NewEncyclopedia(client EncyclopediaClient) *Encyclopedia {
	return &Encyclopedia{client: client}
}

func (e *Encyclopedia) Name() string { return "encyclopedia" }

func (e *Encyclopedia) Match(text string) (Match, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if strings.HasPrefix(lower, "what is") || strings.Contains(lower, "что такое") {
		return Match{Input: text, Query: text}, true
	}
	return Match{}, false
}

func (e *Encyclopedia) Answer(ctx context.Context, m Match) (string, error) {
	summary, err := e.client.Summary(ctx, m.Query)
	if err != nil {
		return "", err
	}
	return summary, nil
}

func (e *Encyclopedia) Fallback(m Match, _ error) string {
	lower := strings.ToLower(m.Query)
	switch {
	case strings.Contains(lower, "rust"):
		return "🦀 **Rust** is a systems programming language known for memory safety and high performance. " +
			"It powers operating systems, web servers, blockchains and much more!\n\n" +
			"Unfortunately I could not reach Wikipedia for the full story, but I know the basics! 😊"
	case strings.Contains(lower, "artificial intelligence"), strings.Contains(lower, "ai"):
		return "🤖 **Artificial intelligence (AI)** is the field of computer science that builds systems able " +
			"to perform tasks normally requiring human intelligence, such as speech recognition, decision " +
			"making and learning.\n\nSorry I cannot pull a more detailed article right now! 🔧"
	case strings.Contains(lower, "programming"), strings.Contains(lower, "программирование"):
		return "💻 **Programming** is the craft of creating computer programs with programming languages: " +
			"writing code, debugging it and testing the result.\n\n" +
			"I could not fetch the full article right now, but I can explain the basics! 😊"
	default:
		return "🤔 Interesting question! I cannot reach external sources at the moment. " +
			"Try asking about something more specific — programming, technology or science. " +
			"I may know the basics! 💡"
	}
}
