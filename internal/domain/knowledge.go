package domain

// WeatherFacts is the structured result of a current-weather lookup.
type WeatherFacts struct {
	City        string
	Country     string
	Condition   string
	Description string
	Temp        float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    int
	PressureHPa int
	WindSpeed   float64
}

// Repo is one ranked repository search result.
type Repo struct {
	Name        string
	Description string
	URL         string
}

// Paper is one arXiv search result.
type Paper struct {
	Title string
	URL   string
}
