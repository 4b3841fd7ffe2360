package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhixsh/ClimaX/internal/config"
	"github.com/abhixsh/ClimaX/internal/handler"
	"github.com/abhixsh/ClimaX/internal/repository"
	"github.com/abhixsh/ClimaX/internal/server"
	"github.com/abhixsh/ClimaX/internal/service"
	"go.uber.org/zap"
)

func main() {
	logger := config.GetLogger()
	defer func() { _ = logger.Sync() }()

	if err := config.Load(); err != nil {
		logger.Warnw("Config file not loaded, using defaults", "error", err)
	}

	apiKey, err := config.RequireOpenWeatherMapAPIKey()
	if err != nil {
		// Fatalw exits with status 1
		logger.Fatalw("Refusing to start", "error", err)
	}

	srv := server.NewHTTPServer(newRouter(apiKey, logger))

	go func() {
		logger.Infow("Weather API server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infow("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), config.GetServerTimeoutDuration("shutdown_timeout", 10*time.Second))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorw("Server forced to shutdown", "error", err)
	}
	logger.Infow("Server exited")
}

func newRouter(apiKey string, logger *zap.SugaredLogger) http.Handler {
	weatherRepo := repository.NewWeatherRepository(apiKey)
	weatherService := service.NewWeatherService(weatherRepo)
	weatherHandler := handler.NewWeatherHandler(weatherService, logger)
	return server.NewRouter(weatherHandler, logger, config.GetCORSAllowedOrigins())
}
