package skill

import (
	"context"

	"github.com/auraya-bot/auraya/internal/domain"
)

type fakeEncyclopedia struct {
	summary string
	err     error
	calls   int
}

func (f *fakeEncyclopedia) Summary(context.Context, string) (string, error) {
	f.calls++
	return f.summary, f.err
}

type fakeWeather struct {
	facts *domain.WeatherFacts
	err   error
	calls int
}

func (f *fakeWeather) CurrentWeather(context.Context, string) (*domain.WeatherFacts, error) {
	f.calls++
	return f.facts, f.err
}

type fakeRepos struct {
	repos []domain.Repo
	err   error
	calls int
	query string
}

func (f *fakeRepos) SearchRepositories(_ context.Context, query string, _ int) ([]domain.Repo, error) {
	f.calls++
	f.query = query
	return f.repos, f.err
}
