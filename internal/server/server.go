package server

import (
	"net"
	"net/http"
	"time"

	"github.com/abhixsh/ClimaX/internal/config"
	"github.com/abhixsh/ClimaX/internal/handler"
	custommiddleware "github.com/abhixsh/ClimaX/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter wires the weather and health routes behind the shared middleware.
func NewRouter(weatherHandler *handler.WeatherHandler, logger *zap.SugaredLogger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(custommiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", custommiddleware.RequestIDHeader},
		ExposedHeaders: []string{custommiddleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", handler.NewHealthHandler(logger).HandleHealth)
	r.Get("/weather", weatherHandler.HandleWeather)
	r.Get("/weather/{city}", weatherHandler.HandleWeather)

	return r
}

// writeTimeoutMargin is the time left after both upstream calls have timed
// out for the error body to be written.
const writeTimeoutMargin = 5 * time.Second

// NewHTTPServer builds the http.Server with timeouts taken from config.
func NewHTTPServer(h http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", config.GetServerPort()),
		Handler:           h,
		ReadHeaderTimeout: config.GetServerTimeoutDuration("read_header_timeout", 15*time.Second),
		ReadTimeout:       config.GetServerTimeoutDuration("read_timeout", 15*time.Second),
		WriteTimeout:      writeTimeout(),
		IdleTimeout:       config.GetServerTimeoutDuration("idle_timeout", 30*time.Second),
	}
}

// writeTimeout returns server.write_timeout, raised if needed so that a request
// whose two sequential upstream calls both time out still gets its 500 body.
func writeTimeout() time.Duration {
	configured := config.GetServerTimeoutDuration("write_timeout", 25*time.Second)
	floor := 2*config.GetOpenWeatherTimeout() + writeTimeoutMargin
	if configured < floor {
		return floor
	}
	return configured
}
