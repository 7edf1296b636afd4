package dashboard

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/dashboard/models"
)

type DashboardService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
