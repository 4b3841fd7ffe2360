package integrationtest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/abhixsh/ClimaX/internal/handler"
	"github.com/abhixsh/ClimaX/internal/repository"
	"github.com/abhixsh/ClimaX/internal/server"
	"github.com/abhixsh/ClimaX/internal/service"
	"go.uber.org/zap"
)

const testAPIKey = "test_api_key"

// mockOWM is a stand-in for the OpenWeatherMap API that counts calls per endpoint.
type mockOWM struct {
	*httptest.Server
	currentCalls  atomic.Int32
	forecastCalls atomic.Int32
}

func (m *mockOWM) resetCounters() {
	m.currentCalls.Store(0)
	m.forecastCalls.Store(0)
}

func readFixture(name string) []byte {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		panic(err)
	}
	return data
}

func newMockOWM() *mockOWM {
	m := &mockOWM{}
	currentLondon := readFixture("current_london.json")
	forecastLondon := readFixture("forecast_london.json")

	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isForecast := r.URL.Path == "/forecast"
		if isForecast {
			m.forecastCalls.Add(1)
		} else {
			m.currentCalls.Add(1)
		}

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("appid") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
			return
		}

		switch q := r.URL.Query().Get("q"); {
		case q == "London" && isForecast:
			_, _ = w.Write(forecastLondon)
		case q == "London":
			_, _ = w.Write(currentLondon)
		case q == "Brokenville" && !isForecast:
			_, _ = w.Write([]byte(`{"name":"Brokenville","sys":{"country":"XX"},"main":{"temp":1.0,"humidity":50},"wind":{"speed":1},"weather":[{"main":"Clear","description":"clear sky","icon":"01d"}]}`))
		case q == "Garbled":
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		}
	}))
	return m
}

// newGatewayRouter builds the full handler stack the way main does.
func newGatewayRouter(apiKey string, httpClient ...*http.Client) http.Handler {
	logger := zap.NewNop().Sugar()
	weatherRepo := repository.NewWeatherRepository(apiKey, httpClient...)
	weatherService := service.NewWeatherService(weatherRepo)
	weatherHandler := handler.NewWeatherHandler(weatherService, logger)
	return server.NewRouter(weatherHandler, logger, []string{"*"})
}

func newGatewayServer(apiKey string, httpClient ...*http.Client) *httptest.Server {
	return httptest.NewServer(newGatewayRouter(apiKey, httpClient...))
}
