package model

type CurrentConditions struct {
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Main        string  `json:"main"`
	Icon        string  `json:"icon"`
}

type Location struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type ForecastPoint struct {
	Date        string  `json:"date"`
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// WeatherResult is the body returned by GET /weather.
type WeatherResult struct {
	Current  CurrentConditions `json:"current"`
	Location Location          `json:"location"`
	Forecast []ForecastPoint   `json:"forecast"`
}
