package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/abhixsh/ClimaX/internal/model"
	"github.com/abhixsh/ClimaX/internal/repository"
	"github.com/abhixsh/ClimaX/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgMissingCity    = "City parameter is required"
	msgCityNotFound   = "City not found"
	msgFetchFailed    = "Failed to fetch weather data"
	msgUnexpectedData = "Unexpected response format from weather provider"
)

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
	Logger         *zap.SugaredLogger
}

func NewWeatherHandler(svc service.WeatherServiceInterface, logger *zap.SugaredLogger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &WeatherHandler{
		WeatherService: svc,
		Logger:         logger,
	}
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorw("could not encode json", "error", err)
	}
}

func (h *WeatherHandler) writeError(w http.ResponseWriter, statusCode int, msg, details string) {
	writeJSONResponse(w, statusCode, model.ErrorResponse{
		Error:   msg,
		Details: details,
		Status:  statusCode,
	}, h.Logger)
}

// HandleWeather serves GET /weather?city=<name> and GET /weather/{city}.
func (h *WeatherHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	// chi routes on RawPath when present, so the segment is still escaped
	city := chi.URLParam(r, "city")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(city); err == nil {
			city = unescaped
		}
	}
	if city == "" {
		city = r.URL.Query().Get("city")
	}

	weather, err := h.WeatherService.GetWeather(r.Context(), city)
	if err != nil {
		h.handleError(w, city, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, weather, h.Logger)
}

// handleError maps the error taxonomy onto status codes and messages.
func (h *WeatherHandler) handleError(w http.ResponseWriter, city string, err error) {
	switch {
	case errors.Is(err, service.ErrMissingCity):
		h.writeError(w, http.StatusBadRequest, msgMissingCity, "")
	case errors.Is(err, repository.ErrCityNotFound):
		h.Logger.Infow("City not found upstream", "city", city)
		h.writeError(w, http.StatusNotFound, msgCityNotFound, "")
	case errors.Is(err, service.ErrIncompleteData):
		h.Logger.Errorw("Weather provider returned incomplete data", "city", city, "error", err)
		h.writeError(w, http.StatusInternalServerError, msgUnexpectedData, err.Error())
	default:
		h.Logger.Errorw("Weather provider request failed", "city", city, "error", err)
		h.writeError(w, http.StatusInternalServerError, msgFetchFailed, err.Error())
	}
}
