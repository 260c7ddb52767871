package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/domain"
)

// ArxivClient searches arXiv's Atom feed for papers.
type ArxivClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewArxivClient() *ArxivClient {
	return &ArxivClient{
		baseURL:    "https://export.arxiv.org/api",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

type arxivFeed struct {
	Entries []struct {
		Title string `xml:"title"`
		ID    string `xml:"id"`
	} `xml:"entry"`
}

func (c *ArxivClient) Search(ctx context.Context, query string, maxResults int) ([]domain.Paper, error) {
	q := url.Values{}
	q.Set("search_query", "all:"+query)
	q.Set("start", "0")
	q.Set("max_results", fmt.Sprintf("%d", maxResults))

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/query?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Bot-Auraya/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if len(feed.Entries) == 0 {
		return nil, domain.ErrNoResults
	}

	papers := make([]domain.Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		papers = append(papers, domain.Paper{
			Title: strings.Join(strings.Fields(e.Title), " "),
			URL:   e.ID,
		})
	}
	return papers, nil
}
