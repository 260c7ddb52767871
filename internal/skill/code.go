package skill

import (
	"context"
	"fmt"
	"strings"

	"github.com/auraya-bot/auraya/internal/config"
)

// Code finds example repositories for a programming language mentioned in
// the utterance.
type Code struct {
	client RepoSearcher
}

func NewCode(client RepoSearcher) *Code {
	return &Code{client: client}
}

func (c *Code) Name() string { return "code" }

var codeKeywords = []string{
	"example in", "пример на", "код на", "code in", "how to write",
	"show me", "покажи", "найди код", "examples for", "tutorial",
	"learn", "изучить", "syntax", "синтаксис",
}

var knownLanguages = map[string]bool{
	"rust": true, "python": true, "javascript": true, "java": true,
	"cpp": true, "csharp": true, "go": true, "kotlin": true,
	"swift": true, "php": true, "ruby": true, "typescript": true,
	"scala": true, "haskell": true, "clojure": true, "dart": true,
	"r": true, "matlab": true, "perl": true, "lua": true,
	"assembly": true, "bash": true, "powershell": true, "sql": true,
	"html": true, "css": true,
}

var languageAliases = map[string]string{
	"js":         "javascript",
	"javascript": "javascript",
	"ts":         "typescript",
	"typescript": "typescript",
	"py":         "python",
	"python":     "python",
	"cpp":        "cpp",
	"c++":        "cpp",
	"cs":         "csharp",
	"c#":         "csharp",
	"csharp":     "csharp",
	"go":         "go",
	"golang":     "go",
	"rs":         "rust",
	"rust":       "rust",
}

// NormalizeLanguage resolves shorthand like "js" or "c++" to the canonical
// language name.
func NormalizeLanguage(lang string) string {
	lower := strings.ToLower(lang)
	if canonical, ok := languageAliases[lower]; ok {
		return canonical
	}
	return lower
}

// DetectLanguage extracts a programming language from a code query: first
// from the token following a preposition ("in"/"for"/"на"), then from any
// recognized language name anywhere in the text.
func DetectLanguage(text string) string {
	parts := strings.Fields(strings.ToLower(text))
	for i, part := range parts {
		if part != "на" && part != "in" && part != "for" {
			continue
		}
		if i+1 < len(parts) {
			lang := NormalizeLanguage(strings.Trim(parts[i+1], "?!.,"))
			if knownLanguages[lang] {
				return lang
			}
		}
	}
	for _, part := range parts {
		lang := NormalizeLanguage(strings.Trim(part, "?!.,"))
		if knownLanguages[lang] {
			return lang
		}
	}
	return ""
}

func (c *Code) Match(text string) (Match, bool) {
	lower := strings.ToLower(text)
	matched := false
	for _, kw := range codeKeywords {
		if strings.Contains(lower, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return Match{}, false
	}
	lang := DetectLanguage(text)
	if lang == "" {
		return Match{}, false
	}
	return Match{Input: text, Language: lang}, true
}

func (c *Code) Answer(ctx context.Context, m Match) (string, error) {
	query := m.Language + " example tutorial"
	repos, err := c.client.SearchRepositories(ctx, query, config.CodeSearchLimit)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🚀 **Code examples in %s:**\n\n", strings.ToUpper(m.Language))
	for i, repo := range repos {
		fmt.Fprintf(&b, "%d. 📂 **%s**\n   💡 %s\n   🔗 %s\n\n",
			i+1, repo.Name, repo.Description, repo.URL)
	}
	b.WriteString("💡 **Tip:** read the README files in these repositories to get the most out of them!")
	return b.String(), nil
}

func (c *Code) Fallback(m Match, _ error) string {
	return fmt.Sprintf("Unfortunately, code examples for **%s** are unavailable right now. Try again later! 💻",
		m.Language)
}
