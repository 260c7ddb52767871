package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/auraya-bot/auraya/internal/config"
	"github.com/auraya-bot/auraya/internal/domain"
)

// DeepLClient translates text between arbitrary language codes. Every error
// it returns is treated as non-fatal by callers: the router forwards the
// original text unchanged when translation fails.
type DeepLClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewDeepLClient(apiKey string) *DeepLClient {
	return &DeepLClient{
		apiKey:     apiKey,
		baseURL:    "https://api-free.deepl.com/v2",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

type deepLResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

func (c *DeepLClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrCredentialsMissing
	}

	form := url.Values{}
	form.Set("auth_key", c.apiKey)
	form.Set("text", text)
	form.Set("target_lang", strings.ToUpper(targetLang))

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Bot-Auraya/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	var data deepLResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if len(data.Translations) == 0 {
		return "", domain.ErrEmptyResult
	}
	return data.Translations[0].Text, nil
}
