package telegram

import "strings"

// SplitMessage splits text into chunks of at most maxLen runes, preferring
// to break at a newline in the second half of a chunk so answers with
// numbered lists stay readable.
func SplitMessage(text string, maxLen int) []string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return []string{text}
	}

	var parts []string
	for len(runes) > maxLen {
		splitAt := maxLen
		for i := maxLen - 1; i > maxLen/2; i-- {
			if runes[i] == '\n' {
				splitAt = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:splitAt]))
		runes = runes[splitAt:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

// FixMarkdown closes dangling code fences and inline code spans so Telegram
// does not reject the whole message over one stray backtick.
func FixMarkdown(text string) string {
	if strings.Count(text, "```")%2 != 0 {
		text += "\n```"
	}
	return closeInlineCode(text)
}

func closeInlineCode(text string) string {
	var b strings.Builder
	inFence := false
	inlineOpen := false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i] == '`' && runes[i+1] == '`' && runes[i+2] == '`' {
			if inlineOpen {
				b.WriteRune('`')
				inlineOpen = false
			}
			inFence = !inFence
			b.WriteString("```")
			i += 2
			continue
		}
		if !inFence && runes[i] == '`' {
			inlineOpen = !inlineOpen
		}
		b.WriteRune(runes[i])
	}

	if inlineOpen {
		b.WriteRune('`')
	}
	return b.String()
}
