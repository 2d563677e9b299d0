package http

import (
	"log/slog"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/stats"
	"github.com/worklog-hq/attendance-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	GetMyStats(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
	}
}

// GetMyStats implements StatsHandler.
func (h *statsHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	req := stats.StatsRequest{Period: r.URL.Query().Get("period")}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.statsService.GetMyStats(r.Context(), req)
	if err != nil {
		slog.Error("GetMyStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
