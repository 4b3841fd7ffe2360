package service

import (
	"context"
	"errors"
	"strings"

	"github.com/abhixsh/ClimaX/internal/model"
	"github.com/abhixsh/ClimaX/internal/repository"
)

// ForecastLimit is the number of upstream forecast entries kept in a result.
const ForecastLimit = 5

var (
	ErrMissingCity    = errors.New("city is required")
	ErrIncompleteData = errors.New("incomplete data from weather provider")
)

type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, city string) (*model.WeatherResult, error)
}

type WeatherService struct {
	WeatherRepo repository.WeatherRepository
}

func NewWeatherService(repo repository.WeatherRepository) *WeatherService {
	return &WeatherService{WeatherRepo: repo}
}

// GetWeather fetches current conditions and then the forecast for city.
// Current conditions are validated before the forecast is requested, so a
// not-found city or a broken current payload never costs a second call.
func (s *WeatherService) GetWeather(ctx context.Context, city string) (*model.WeatherResult, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrMissingCity
	}
	if ctx == nil {
		ctx = context.Background()
	}

	current, err := s.WeatherRepo.GetCurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}
	conditions, location, err := toCurrentConditions(current)
	if err != nil {
		return nil, err
	}

	forecast, err := s.WeatherRepo.GetForecast(ctx, city)
	if err != nil {
		return nil, err
	}
	points, err := toForecastPoints(forecast, ForecastLimit)
	if err != nil {
		return nil, err
	}

	return &model.WeatherResult{
		Current:  conditions,
		Location: location,
		Forecast: points,
	}, nil
}
