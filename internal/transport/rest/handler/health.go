package handler

import (
	"net/http"

	"leagueops/internal/model"
	"leagueops/internal/service"
)

// HealthHandler serves GET /health for any of the services.
type HealthHandler struct {
	health *service.HealthService
}

func NewHealthHandler(health *service.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

func (h *HealthHandler) Serve(w http.ResponseWriter, r *http.Request) {
	report := h.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != model.HealthStatusHealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}
