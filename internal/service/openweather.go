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

// OpenWeatherClient looks up current weather for a city.
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:     apiKey,
		baseURL:    "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

type openWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Name string `json:"name"`
}

func (c *OpenWeatherClient) CurrentWeather(ctx context.Context, city string) (*domain.WeatherFacts, error) {
	if c.apiKey == "" {
		return nil, domain.ErrCredentialsMissing
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Bot-Auraya/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrCityNotFound
	case http.StatusUnauthorized:
		return nil, domain.ErrCredentialsMissing
	case http.StatusTooManyRequests:
		return nil, domain.ErrRateLimited
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	facts := &domain.WeatherFacts{
		City:        data.Name,
		Country:     data.Sys.Country,
		Temp:        data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		TempMin:     data.Main.TempMin,
		TempMax:     data.Main.TempMax,
		Humidity:    data.Main.Humidity,
		PressureHPa: data.Main.Pressure,
		WindSpeed:   data.Wind.Speed,
	}
	if len(data.Weather) > 0 {
		facts.Condition = data.Weather[0].Main
		facts.Description = data.Weather[0].Description
	}
	return facts, nil
}
