package skill

import (
	"context"
	"fmt"
	"strings"
)

// ChitChat is the terminal fallback: a deterministic decision tree over
// keyword buckets. When a bucket has several canned variants the selection
// is input length modulo variant count — deterministic on purpose, so the
// same utterance always gets the same reply.
type ChitChat struct{}

func NewChitChat() *ChitChat { return &ChitChat{} }

func (c *ChitChat) Name() string { return "chitchat" }

// Match always succeeds; the chit-chat skill must be last in the order.
func (c *ChitChat) Match(text string) (Match, bool) {
	return Match{Input: text}, true
}

var (
	shortReplies = []string{
		"Interesting! Tell me more 🤔",
		"Got it! What exactly are you curious about?",
		"Hmm, tell me more about that!",
		"Intriguing! Go on 😊",
	}
	genericReplies = []string{
		"Interesting! I can help with information lookups, calculations or code examples 🤔",
		"Got you! Try asking about the weather, math or programming 😊",
		"Hmm, intriguing topic! Could you ask something more specific? 💡",
		"That's curious! Let's get into the details 🚀",
	}
)

func (c *ChitChat) Answer(_ context.Context, m Match) (string, error) {
	input := m.Input
	lower := strings.ToLower(input)

	switch {
	case containsAny(lower, "hello", "привет", "hi"):
		return "👋 Hey! How is it going? What shall we talk about?", nil

	case containsAny(lower, "how are you", "как дела"):
		return "Great! Ready to help with any question. What are you curious about? 😊", nil

	case containsAny(lower, "thank", "спасибо"):
		return "You're welcome! Glad to help! Any more questions? 😊", nil

	case containsAny(lower, "bye", "пока", "до свидания"):
		return "Goodbye! Have a great day! Come back whenever you need me! 👋", nil

	case containsAny(lower, "what are you", "кто ты", "что ты"):
		return "I'm Auraya, a smart assistant! 🤖 I can look up information, answer programming " +
			"questions, find GitHub repositories, solve math problems, check the weather and more. " +
			"How can I help?", nil

	case containsAny(lower, "help", "помощь", "что умеешь"):
		return "Here is what I can do:\n" +
			"• 🔍 Look up information on Wikipedia\n" +
			"• 💻 Find repositories on GitHub\n" +
			"• 🧮 Solve math problems\n" +
			"• 🌤️ Check the weather in any city\n" +
			"• 💡 Show code examples\n" +
			"• 🌍 Translate between languages\n" +
			"• 💬 Chat in your language\n\n" +
			"Just ask, or use the /help command!", nil

	case len(input) < 10 && !strings.ContainsAny(input, "?!"):
		return shortReplies[len(input)%len(shortReplies)], nil

	case containsAny(lower, "?", "как", "что", "where", "how", "what"):
		return "Good question! 🤔 Try asking something specific:\n\n" +
			"• 📖 \"What is Rust?\" — Wikipedia lookup\n" +
			"• 🧮 \"2 + 2 * 3\" — math\n" +
			"• 🌤️ \"Weather in London\" — forecast\n" +
			"• 💻 \"Code examples in Python\" — repository search\n\n" +
			"I'll do my best to find an answer!", nil

	case containsAny(lower, "love", "люблю"):
		return "Nice to hear! 😊 What inspires you most?", nil

	case containsAny(lower, "hate", "ненавижу"):
		return "I get it, rough moments happen. Shall we talk about something brighter? 🌟", nil

	case containsAny(lower, "weather", "погода"):
		return "🌤️ Want the weather? Tell me a city!\n\n" +
			"For example: \"Weather in London\" or \"Погода в Москве\" 🏙️", nil

	case containsAny(lower, "time", "время"):
		return "Better check the time on your own device! ⏰ But I always have time to help you!", nil

	case containsAny(lower, "learn", "учить", "изучать"):
		return "Learning is great! 📚 What do you want to study?\n\n" +
			"• 💻 Programming — I'll show code examples\n" +
			"• 🧮 Math — I'll solve problems\n" +
			"• 🌍 Technology — I'll find information\n\n" +
			"Just ask something specific!", nil

	case len(input) > 50:
		preview := input
		if runes := []rune(input); len(runes) > 40 {
			preview = string(runes[:40])
		}
		return fmt.Sprintf("I hear you talking about \"%s\". Interesting topic! 🤔 "+
			"Try a more specific question — I can help with:\n\n"+
			"• 📖 Information lookups\n• 🧮 Calculations\n• 💻 Code examples\n• 🌤️ Weather",
			preview), nil

	default:
		return genericReplies[len(input)%len(genericReplies)], nil
	}
}

func (c *ChitChat) Fallback(m Match, _ error) string {
	return genericReplies[len(m.Input)%len(genericReplies)]
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
