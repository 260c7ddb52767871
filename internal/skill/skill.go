// Package skill implements the intent matchers and handlers the router
// dispatches to. Skills are evaluated in a fixed priority order: several
// predicates can hold for the same utterance, so the order is part of the
// contract, not an implementation accident.
package skill

import (
	"context"

	"github.com/auraya-bot/auraya/internal/domain"
)

// Match carries whatever the predicate extracted from the utterance.
type Match struct {
	Input      string // the full working-language utterance
	Query      string // encyclopedic topic query
	City       string // weather city, empty when none was found
	Language   string // normalized programming language name
	Expression string // cleaned arithmetic expression
}

// Skill recognizes one class of user intent and produces a working-language
// answer. Answer errors never propagate past the router: Fallback converts
// them into user-facing text.
type Skill interface {
	Name() string
	Match(text string) (Match, bool)
	Answer(ctx context.Context, m Match) (string, error)
	Fallback(m Match, err error) string
}

// Collaborator capabilities, satisfied by the service package clients.
type EncyclopediaClient interface {
	Summary(ctx context.Context, query string) (string, error)
}

type WeatherClient interface {
	CurrentWeather(ctx context.Context, city string) (*domain.WeatherFacts, error)
}

type RepoSearcher interface {
	SearchRepositories(ctx context.Context, query string, limit int) ([]domain.Repo, error)
}

type Deps struct {
	Encyclopedia EncyclopediaClient
	Weather      WeatherClient
	Repos        RepoSearcher
}

// Default returns the skills in their fixed priority order.
func Default(deps Deps) []Skill {
	return []Skill{
		NewEncyclopedia(deps.Encyclopedia),
		NewMath(),
		NewWeather(deps.Weather),
		NewCode(deps.Repos),
		NewRepos(deps.Repos),
		NewChitChat(),
	}
}
