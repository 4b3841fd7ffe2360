package service

import (
	"fmt"

	"github.com/abhixsh/ClimaX/internal/model"
)

func missing(field string) error {
	return fmt.Errorf("%w: missing field %q", ErrIncompleteData, field)
}

func toCurrentConditions(resp *model.OpenWeatherMapResponse) (model.CurrentConditions, model.Location, error) {
	var (
		cur model.CurrentConditions
		loc model.Location
	)
	if resp == nil {
		return cur, loc, missing("body")
	}

	m := resp.Main
	switch {
	case m == nil:
		return cur, loc, missing("main")
	case m.Temp == nil:
		return cur, loc, missing("main.temp")
	case m.FeelsLike == nil:
		return cur, loc, missing("main.feels_like")
	case m.Humidity == nil:
		return cur, loc, missing("main.humidity")
	}
	if resp.Wind == nil || resp.Wind.Speed == nil {
		return cur, loc, missing("wind.speed")
	}
	cond, err := firstCondition(resp.Weather, "weather", true)
	if err != nil {
		return cur, loc, err
	}
	if resp.Name == nil {
		return cur, loc, missing("name")
	}
	if resp.Sys == nil || resp.Sys.Country == nil {
		return cur, loc, missing("sys.country")
	}

	cur = model.CurrentConditions{
		Temp:        *m.Temp,
		FeelsLike:   *m.FeelsLike,
		Humidity:    *m.Humidity,
		WindSpeed:   *resp.Wind.Speed,
		Description: *cond.Description,
		Main:        *cond.Main,
		Icon:        *cond.Icon,
	}
	loc = model.Location{Name: *resp.Name, Country: *resp.Sys.Country}
	return cur, loc, nil
}

// toForecastPoints maps the first limit entries of the forecast list. Only
// those entries are validated; the rest of the list is ignored.
func toForecastPoints(resp *model.OpenWeatherMapForecastResponse, limit int) ([]model.ForecastPoint, error) {
	// encoding/json leaves a slice nil only when the key is absent or null
	if resp == nil || resp.List == nil {
		return nil, missing("list")
	}

	entries := resp.List
	if len(entries) > limit {
		entries = entries[:limit]
	}

	points := make([]model.ForecastPoint, 0, len(entries))
	for i, e := range entries {
		prefix := fmt.Sprintf("list[%d]", i)
		if e.DtTxt == nil {
			return nil, missing(prefix + ".dt_txt")
		}
		if e.Main == nil || e.Main.Temp == nil {
			return nil, missing(prefix + ".main.temp")
		}
		cond, err := firstCondition(e.Weather, prefix+".weather", false)
		if err != nil {
			return nil, err
		}
		points = append(points, model.ForecastPoint{
			Date:        *e.DtTxt,
			Temp:        *e.Main.Temp,
			Description: *cond.Description,
			Icon:        *cond.Icon,
		})
	}
	return points, nil
}

func firstCondition(conds []model.OpenWeatherMapCondition, path string, needMain bool) (model.OpenWeatherMapCondition, error) {
	if len(conds) == 0 {
		return model.OpenWeatherMapCondition{}, missing(path + "[0]")
	}
	c := conds[0]
	switch {
	case c.Description == nil:
		return c, missing(path + "[0].description")
	case needMain && c.Main == nil:
		return c, missing(path + "[0].main")
	case c.Icon == nil:
		return c, missing(path + "[0].icon")
	}
	return c, nil
}
