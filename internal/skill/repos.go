package skill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/domain"
)

// Repos handles generic repository-search requests not caught by the code
// skill.
type Repos struct {
	client RepoSearcher
}

func NewRepos(client RepoSearcher) *Repos {
	return &Repos{client: client}
}

func (r *Repos) Name() string { return "repos" }

var repoKeywords = []string{"rust example", "github", "code"}

func (r *Repos) Match(text string) (Match, bool) {
	lower := strings.ToLower(text)
	for _, kw := range repoKeywords {
		if strings.Contains(lower, kw) {
			return Match{Input: text, Query: "rust example"}, true
		}
	}
	return Match{}, false
}

func (r *Repos) Answer(ctx context.Context, m Match) (string, error) {
	repos, err := r.client.SearchRepositories(ctx, m.Query, config.RepoSearchLimit)
	if err != nil {
		return "", err
	}

	blocks := make([]string, len(repos))
	for i, repo := range repos {
		blocks[i] = fmt.Sprintf("📂 **%s**\n%s\n🔗 %s", repo.Name, repo.Description, repo.URL)
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (r *Repos) Fallback(_ Match, err error) string {
	if errors.Is(err, domain.ErrNoResults) {
		return "Unfortunately, code examples are unavailable right now. Try again later! 💻"
	}
	return "Sorry, I can't find repositories at the moment. Try again later! 🔧"
}
