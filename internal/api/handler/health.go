package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/strategiq/scoreboard/internal/api/middleware"
	"github.com/strategiq/scoreboard/internal/api/response"
)

// DBPinger checks that the database is reachable.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the liveness and readiness endpoints.
type HealthHandler struct {
	pinger  DBPinger
	version string
}

// NewHealthHandler creates a new HealthHandler. pinger may be nil.
func NewHealthHandler(pinger DBPinger, version string) *HealthHandler {
	return &HealthHandler{
		pinger:  pinger,
		version: version,
	}
}

type databaseStatus struct {
	Connected bool `json:"connected"`
}

type readyData struct {
	Status   string         `json:"status"`
	Version  string         `json:"version"`
	Database databaseStatus `json:"database"`
}

// Live handles GET /health. It never touches storage.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	response.Text(w, http.StatusOK, "OK")
}

// Ready handles GET /ready and reports whether the database answers.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	connected := false
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			slog.Warn("database ping failed", "error", err, "requestId", requestID)
		} else {
			connected = true
		}
	}

	data := readyData{
		Status:   "healthy",
		Version:  h.version,
		Database: databaseStatus{Connected: connected},
	}
	status := http.StatusOK
	if !connected {
		data.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	response.Success(w, status, data, requestID)
}
