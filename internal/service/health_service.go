package service

import (
	"context"
	"log/slog"

	"bi-assistant/internal/llm"
	"bi-assistant/internal/metrics"
	"bi-assistant/internal/model"
)

const (
	ServiceName = "BI Assistant (Ollama)"

	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	ollamaDownMessage = "Ollama not running. Install from https://ollama.ai"
)

// HealthService probes the generation service independently of the relay.
type HealthService struct {
	llm llm.LLMProvider
}

func NewHealthService(provider llm.LLMProvider) *HealthService {
	return &HealthService{llm: provider}
}

// Check never fails; any probe error is reported as a degraded status.
func (s *HealthService) Check(ctx context.Context) *model.HealthStatus {
	if err := s.llm.Ping(ctx); err != nil {
		slog.Warn("Ollama health probe failed", "error", err)
		metrics.RecordHealthCheck(false)
		return &model.HealthStatus{
			Status:          StatusDegraded,
			Service:         ServiceName,
			OllamaConnected: false,
			Message:         ollamaDownMessage,
		}
	}

	metrics.RecordHealthCheck(true)
	return &model.HealthStatus{
		Status:          StatusHealthy,
		Service:         ServiceName,
		OllamaConnected: true,
	}
}
