package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/domain"
)

// WikipediaClient fetches encyclopedic summaries. Lookup goes through three
// rungs: the REST summary endpoint, the Action API extract, and finally a
// scrape of the article page's leading paragraphs.
type WikipediaClient struct {
	restURL    string
	actionURL  string
	pageURL    string
	httpClient *http.Client
}

func NewWikipediaClient() *WikipediaClient {
	return &WikipediaClient{
		restURL:    "https://en.wikipedia.org/api/rest_v1",
		actionURL:  "https://en.wikipedia.org/w/api.php",
		pageURL:    "https://en.wikipedia.org/wiki",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

// Summary returns a working-language summary for a free-text question.
func (c *WikipediaClient) Summary(ctx context.Context, query string) (string, error) {
	topic := CleanTopic(query)
	if topic == "" {
		return "", domain.ErrNoSummary
	}

	if text, err := c.fromRestAPI(ctx, topic); err == nil {
		return text, nil
	}
	if text, err := c.fromActionAPI(ctx, topic); err == nil {
		return text, nil
	}
	return c.fromPageScrape(ctx, topic)
}

type restSummary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

func (c *WikipediaClient) fromRestAPI(ctx context.Context, topic string) (string, error) {
	endpoint := c.restURL + "/page/summary/" + url.PathEscape(topic)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Bot-Auraya/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var summary restSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if summary.Extract == "" || strings.Contains(summary.Extract, "may refer to:") {
		return "", domain.ErrNoSummary
	}
	return fmt.Sprintf("📖 **%s**\n\n%s", summary.Title, summary.Extract), nil
}

type actionResponse struct {
	Query struct {
		Pages map[string]struct {
			Title   string `json:"title"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

func (c *WikipediaClient) fromActionAPI(ctx context.Context, topic string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("titles", topic)
	q.Set("prop", "extracts")
	q.Set("exintro", "")
	q.Set("explaintext", "")

	req, err := http.NewRequestWithContext(ctx, "GET", c.actionURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Bot-Auraya/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var data actionResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	for _, page := range data.Query.Pages {
		if page.Extract != "" && !strings.Contains(page.Extract, "may refer to:") {
			title := page.Title
			if title == "" {
				title = "Wikipedia"
			}
			return fmt.Sprintf("📖 **%s**\n\n%s", title, page.Extract), nil
		}
	}
	return "", domain.ErrNoSummary
}

// fromPageScrape pulls the first paragraphs straight off the article page.
func (c *WikipediaClient) fromPageScrape(ctx context.Context, topic string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.pageURL+"/"+url.PathEscape(topic), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Bot-Auraya/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	var paragraphs []string
	doc.Find("div.mw-parser-output > p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < 2
	})
	if len(paragraphs) == 0 {
		return "", domain.ErrNoSummary
	}

	title := strings.TrimSpace(doc.Find("h1#firstHeading").First().Text())
	if title == "" {
		title = topic
	}
	return fmt.Sprintf("📖 **%s**\n\n%s", title, strings.Join(paragraphs, "\n\n")), nil
}

// topicAliases rewrites common shorthand into the article titles that
// actually resolve.
var topicAliases = map[string]string{
	"ai":  "artificial_intelligence",
	"ии":  "artificial_intelligence",
	"ml":  "machine_learning",
	"js":  "javascript",
	"css": "cascading_style_sheets",
	"cpp": "c++",
}

// CleanTopic strips question framing from a query and leaves the lookup topic.
func CleanTopic(query string) string {
	cleaned := strings.ToLower(query)
	for _, prefix := range []string{
		"what is ", "что такое ", "tell me about ", "расскажи о ",
		"explain ", "объясни ",
	} {
		cleaned = strings.ReplaceAll(cleaned, prefix, "")
	}
	cleaned = strings.NewReplacer("?", "", "!", "").Replace(cleaned)
	cleaned = strings.TrimSpace(cleaned)

	if alias, ok := topicAliases[cleaned]; ok {
		return alias
	}
	return strings.ReplaceAll(cleaned, " ", "_")
}
