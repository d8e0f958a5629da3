package api

import (
	"net/http"

	"bi-assistant/internal/interfaces"
)

// HealthHandler reports whether the generation service is reachable.
type HealthHandler struct {
	service interfaces.HealthService
}

func NewHealthHandler(svc interfaces.HealthService) *HealthHandler {
	return &HealthHandler{service: svc}
}

// HandleHealth godoc
// @Summary      Generation service health
// @Description  Probes Ollama's /api/tags endpoint. Returns 503 when Ollama cannot be reached.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  model.HealthStatus
// @Failure      503  {object}  model.HealthStatus
// @Router       /health [get]
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := h.service.Check(r.Context())
	code := http.StatusOK
	if !status.OllamaConnected {
		code = http.StatusServiceUnavailable
	}
	respondWithJSON(w, code, status)
}
