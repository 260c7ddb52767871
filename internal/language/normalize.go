package language

import (
	"regexp"
	"strings"
)

var (
	reSpace = regexp.MustCompile(`\s+`)
	rePunct = regexp.MustCompile(`[[:punct:]]`)
	reEmoji = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}\x{FE0F}\x{200D}]`)
)

// Normalize trims, lowercases and collapses internal whitespace runs to a
// single space. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return reSpace.ReplaceAllString(text, " ")
}

// RemovePunctuation strips ASCII punctuation characters.
func RemovePunctuation(text string) string {
	return rePunct.ReplaceAllString(text, "")
}

// RemoveEmoji strips emoji and related symbol code points.
func RemoveEmoji(text string) string {
	return reEmoji.ReplaceAllString(text, "")
}

// ExtractWords returns the lowercase words of text with punctuation removed.
func ExtractWords(text string) []string {
	cleaned := RemovePunctuation(Normalize(text))
	return strings.Fields(cleaned)
}

func WordCount(text string) int {
	return len(ExtractWords(text))
}

// TruncateWords keeps the first n words of text, appending an ellipsis when
// anything was cut.
func TruncateWords(text string, n int) string {
	words := strings.Fields(text)
	if n <= 0 || len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "..."
}
