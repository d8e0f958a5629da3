package interfaces

import (
	"context"

	"bi-assistant/internal/model"
)

// The API layer depends on these interfaces rather than on the concrete
// services, so handlers can be tested against generated mocks.

// ChatService defines the contract for the chat relay.
type ChatService interface {
	Relay(ctx context.Context, exchangeID string, req *model.ChatRequest) (*model.ChatResponse, error)
}

// HealthService defines the contract for probing the generation service.
type HealthService interface {
	Check(ctx context.Context) *model.HealthStatus
}
