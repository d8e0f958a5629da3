package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	app_errors "bi-assistant/internal/errors"
	"bi-assistant/internal/interfaces"
	"bi-assistant/internal/metrics"
	"bi-assistant/internal/model"
	"bi-assistant/internal/service"
)

// ExchangeIDHeader carries the identifier used to correlate a relay's log records.
const ExchangeIDHeader = "X-Exchange-ID"

type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleChat godoc
// @Summary      Relay a chat message
// @Description  Builds a prompt from the message and up to two prior exchanges, asks Ollama for a completion and returns it.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      model.ChatRequest  true  "Message and optional history"
// @Success      200          {object}  model.ChatResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      500          {object}  ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	exchangeID := uuid.NewString()
	w.Header().Set(ExchangeIDHeader, exchangeID)

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("Error decoding chat request body", "exchange_id", exchangeID, "error", err)
		metrics.RecordRelay("validation_error")
		respondWithError(w, app_errors.NewValidationError("Invalid request payload"))
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if err := validateRequest(&req); err != nil {
		slog.Debug("Chat request failed validation", "exchange_id", exchangeID, "error", err)
		metrics.RecordRelay("validation_error")
		respondWithError(w, service.ErrNoMessage)
		return
	}

	resp, err := h.service.Relay(r.Context(), exchangeID, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}
