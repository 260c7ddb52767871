package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/domain"
)

// GitHubClient searches public repositories, ranked by stars.
type GitHubClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewGitHubClient creates a client. The token is optional; without it the
// search API still works at a lower rate limit.
func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		token:      token,
		baseURL:    "https://api.github.com",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

type repoSearchResponse struct {
	Items []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		HTMLURL     string `json:"html_url"`
	} `json:"items"`
}

func (c *GitHubClient) SearchRepositories(ctx context.Context, query string, limit int) ([]domain.Repo, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("sort", "stars")
	q.Set("order", "desc")
	q.Set("per_page", fmt.Sprintf("%d", limit))

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/search/repositories?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Bot-Auraya/1.0")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var data repoSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	repos := make([]domain.Repo, 0, len(data.Items))
	for _, item := range data.Items {
		if len(repos) == limit {
			break
		}
		desc := item.Description
		if desc == "" {
			desc = "No description"
		}
		repos = append(repos, domain.Repo{
			Name:        item.Name,
			Description: desc,
			URL:         item.HTMLURL,
		})
	}
	if len(repos) == 0 {
		return nil, domain.ErrNoResults
	}
	return repos, nil
}
