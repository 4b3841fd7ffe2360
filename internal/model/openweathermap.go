package model

// The upstream payload types use pointers and nil slices so that an absent
// field can be told apart from a zero value.

type OpenWeatherMapMain struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  *int     `json:"pressure"`
	Humidity  *int     `json:"humidity"`
}

type OpenWeatherMapCondition struct {
	ID          int     `json:"id"`
	Main        *string `json:"main"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type OpenWeatherMapWind struct {
	Speed *float64 `json:"speed"`
	Deg   int      `json:"deg"`
}

type OpenWeatherMapSys struct {
	Country *string `json:"country"`
}

// OpenWeatherMapResponse is the /weather (current conditions) payload.
type OpenWeatherMapResponse struct {
	Name    *string                   `json:"name"`
	Main    *OpenWeatherMapMain       `json:"main"`
	Weather []OpenWeatherMapCondition `json:"weather"`
	Wind    *OpenWeatherMapWind       `json:"wind"`
	Sys     *OpenWeatherMapSys        `json:"sys"`
}

type OpenWeatherMapForecastEntry struct {
	Dt      int64                     `json:"dt"`
	DtTxt   *string                   `json:"dt_txt"`
	Main    *OpenWeatherMapMain       `json:"main"`
	Weather []OpenWeatherMapCondition `json:"weather"`
}

// OpenWeatherMapForecastResponse is the /forecast (5 day / 3 hour) payload.
type OpenWeatherMapForecastResponse struct {
	List []OpenWeatherMapForecastEntry `json:"list"`
}
