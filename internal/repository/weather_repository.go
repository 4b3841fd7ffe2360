package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/abhixsh/ClimaX/internal/config"
	"github.com/abhixsh/ClimaX/internal/model"
	"go.uber.org/zap"
)

// Custom error types
var (
	ErrCityNotFound      = errors.New("city not found")
	ErrUpstreamTransport = errors.New("weather provider request failed")
)

// WeatherRepository defines the interface for upstream weather data access
type WeatherRepository interface {
	GetCurrentWeather(ctx context.Context, city string) (*model.OpenWeatherMapResponse, error)
	GetForecast(ctx context.Context, city string) (*model.OpenWeatherMapForecastResponse, error)
}

// weatherRepository implements WeatherRepository against the OpenWeatherMap API
type weatherRepository struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	units      string
	logger     *zap.SugaredLogger
}

// NewWeatherRepository creates a new weather repository instance. The optional
// client replaces the default one, whose timeout comes from config.
func NewWeatherRepository(apiKey string, httpClient ...*http.Client) WeatherRepository {
	client := &http.Client{Timeout: config.GetOpenWeatherTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &weatherRepository{
		httpClient: client,
		baseURL:    strings.TrimRight(config.GetOpenWeatherApiUrl(), "/"),
		apiKey:     apiKey,
		units:      config.GetOpenWeatherUnits(),
		logger:     config.GetLogger(),
	}
}

// GetCurrentWeather retrieves the latest observed conditions for a city
func (r *weatherRepository) GetCurrentWeather(ctx context.Context, city string) (*model.OpenWeatherMapResponse, error) {
	var data model.OpenWeatherMapResponse
	if err := r.get(ctx, "weather", city, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetForecast retrieves the 5 day / 3 hour forecast for a city
func (r *weatherRepository) GetForecast(ctx context.Context, city string) (*model.OpenWeatherMapForecastResponse, error) {
	var data model.OpenWeatherMapForecastResponse
	if err := r.get(ctx, "forecast", city, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// get issues GET {baseURL}/{endpoint} and decodes a 200 body into out.
// A 404 maps to ErrCityNotFound; everything else that goes wrong, including
// a body that is not JSON, maps to ErrUpstreamTransport.
func (r *weatherRepository) get(ctx context.Context, endpoint, city string, out interface{}) error {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", r.apiKey)
	params.Set("units", r.units)
	reqURL := r.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}

	r.logger.Debugw("Calling weather provider", "endpoint", endpoint, "city", city)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstreamTransport, endpoint, redact(err, r.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: reading body: %v", ErrUpstreamTransport, endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrCityNotFound, city)
		}
		return fmt.Errorf("%w: %s: status %d: %s", ErrUpstreamTransport, endpoint, resp.StatusCode, upstreamMessage(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: malformed response: %v", ErrUpstreamTransport, endpoint, err)
	}
	return nil
}

// upstreamMessage pulls "message" out of an OpenWeatherMap error body.
func upstreamMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(body))
}

// redact keeps the API key out of *url.Error messages that end up in response details.
func redact(err error, apiKey string) string {
	msg := err.Error()
	if apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, apiKey, "***")
}
