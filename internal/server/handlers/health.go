package handlers

import (
	"log/slog"
	"net/http"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	logger  *slog.Logger
	service string
}

// NewHealthHandler creates a new health check handler for the named service
func NewHealthHandler(logger *slog.Logger, service string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		service: service,
	}
}

// HealthResponse represents the health check reply
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

// Health handles GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Service: h.service,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
