package handler

import (
	"net/http"

	"github.com/abhixsh/ClimaX/internal/model"
	"go.uber.org/zap"
)

type HealthHandler struct {
	Logger *zap.SugaredLogger
}

func NewHealthHandler(logger *zap.SugaredLogger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &HealthHandler{Logger: logger}
}

// HandleHealth reports liveness. It never touches the weather provider.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, http.StatusOK, model.HealthResponse{Status: "healthy"}, h.Logger)
}
