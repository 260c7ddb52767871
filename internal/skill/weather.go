package skill

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/auraya-bot/auraya/internal/domain"
)

// Weather answers current-weather questions. Without an extractable city it
// asks for one and makes no external call.
type Weather struct {
	client WeatherClient
}

func NewWeather(client WeatherClient) *Weather {
	return &Weather{client: client}
}

func (w *Weather) Name() string { return "weather" }

var weatherKeywords = []string{
	"погода", "weather", "температура", "temperature",
	"дождь", "rain", "снег", "snow", "солнце", "sunny",
	"облачно", "cloudy", "туман", "fog", "ветер", "wind",
}

// cityPatterns are tried in order; the first capture wins.
var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`погода в (.+)`),
	regexp.MustCompile(`weather in (.+)`),
	regexp.MustCompile(`температура в (.+)`),
	regexp.MustCompile(`какая погода в (.+)`),
	regexp.MustCompile(`how is weather in (.+)`),
}

func (w *Weather) Match(text string) (Match, bool) {
	lower := strings.ToLower(text)
	matched := false
	for _, kw := range weatherKeywords {
		if strings.Contains(lower, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return Match{}, false
	}
	return Match{Input: text, City: ExtractCity(text)}, true
}

// ExtractCity pulls the city name out of a "weather in X" style query.
// Returns "" when no pattern matches.
func ExtractCity(text string) string {
	lower := strings.ToLower(text)
	for _, re := range cityPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			city := strings.TrimSpace(m[1])
			city = strings.TrimRight(city, "?!.,")
			if city != "" {
				return city
			}
		}
	}
	return ""
}

func (w *Weather) Answer(ctx context.Context, m Match) (string, error) {
	if m.City == "" {
		return "🌤️ Tell me a city to get the weather!\n\n" +
			"For example: \"Weather in London\" or \"Погода в Москве\" 🏙️", nil
	}
	facts, err := w.client.CurrentWeather(ctx, m.City)
	if err != nil {
		return "", err
	}
	return FormatWeather(facts), nil
}

func (w *Weather) Fallback(m Match, err error) string {
	switch {
	case errors.Is(err, domain.ErrCredentialsMissing):
		return offlineWeather(m.City)
	case errors.Is(err, domain.ErrCityNotFound):
		return fmt.Sprintf("🏙️ City **%s** not found. Check the spelling.", m.City)
	case errors.Is(err, domain.ErrRateLimited):
		return "⏰ The weather service is over its request limit. Try again in a minute."
	default:
		return fmt.Sprintf("❌ Could not fetch the weather for **%s** right now. Try again later!", m.City)
	}
}

// FormatWeather renders a weather report with emoji and the details the
// original bot showed.
func FormatWeather(f *domain.WeatherFacts) string {
	var b strings.Builder

	location := f.City
	if f.Country != "" {
		location += ", " + f.Country
	}
	fmt.Fprintf(&b, "%s **Weather in %s**\n\n", conditionEmoji(f.Condition), location)
	fmt.Fprintf(&b, "🌡️ **Temperature:** %.1f°C (feels like %.1f°C) %s\n",
		f.Temp, f.FeelsLike, temperatureEmoji(f.Temp))

	description := f.Description
	if description == "" {
		description = "unknown"
	}
	fmt.Fprintf(&b, "📊 **Conditions:** %s\n", capitalizeFirst(description))
	fmt.Fprintf(&b, "💧 **Humidity:** %d%%\n", f.Humidity)
	fmt.Fprintf(&b, "📏 **Pressure:** %.0f mmHg\n", float64(f.PressureHPa)*0.75)
	if f.WindSpeed > 0 {
		fmt.Fprintf(&b, "💨 **Wind:** %.1f m/s\n", f.WindSpeed)
	}
	fmt.Fprintf(&b, "📈 **Range:** %.1f°C ... %.1f°C", f.TempMin, f.TempMax)

	return b.String()
}

func conditionEmoji(condition string) string {
	switch condition {
	case "Clear":
		return "☀️"
	case "Clouds":
		return "☁️"
	case "Rain":
		return "🌧️"
	case "Drizzle":
		return "🌦️"
	case "Thunderstorm":
		return "⛈️"
	case "Snow":
		return "❄️"
	case "Mist", "Fog":
		return "🌫️"
	default:
		return "🌤️"
	}
}

func temperatureEmoji(temp float64) string {
	switch {
	case temp >= 30:
		return "🔥"
	case temp >= 25:
		return "🌡️"
	case temp >= 15:
		return "🌤️"
	case temp >= 5:
		return "❄️"
	case temp >= -10:
		return "🧊"
	default:
		return "🥶"
	}
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func offlineWeather(city string) string {
	return fmt.Sprintf("🌤️ **Weather for %s**\n\n"+
		"Live data is unavailable right now.\n\n"+
		"💡 **To enable weather lookups:**\n"+
		"• Add OPENWEATHER_API_KEY to the environment\n"+
		"• Register at openweathermap.org\n"+
		"• Grab a free API key\n\n"+
		"📱 **Alternatives:** AccuWeather, Weather.com", city)
}
