package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/handler/http/response"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	store HealthChecker
}

func NewHealthHandler(store HealthChecker) HealthHandler {
	return &healthHandlerImpl{
		store: store,
	}
}

// Check implements HealthHandler.
func (h *healthHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Healthy(r.Context()); err != nil {
		slog.Error("Health check failed", "error", err)
		response.ServiceUnavailable(w, "Attendance store is unavailable")
		return
	}

	response.SuccessWithMessage(w, "ok", nil)
}
