package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"bi-assistant/internal/config"
	app_errors "bi-assistant/internal/errors"
	"bi-assistant/internal/llm"
	"bi-assistant/internal/metrics"
	"bi-assistant/internal/model"
	"bi-assistant/internal/prompt"
)

// ErrNoMessage is returned for a request whose message is empty after trimming.
var ErrNoMessage = app_errors.NewValidationError("No message provided")

// ChatService relays one chat message to the generation service.
type ChatService struct {
	llm        llm.LLMProvider
	builder    *prompt.Builder
	promptMode string
	model      string
}

func NewChatService(provider llm.LLMProvider, builder *prompt.Builder, cfg *config.Config) *ChatService {
	return &ChatService{
		llm:        provider,
		builder:    builder,
		promptMode: cfg.PromptMode,
		model:      cfg.OllamaModel,
	}
}

// Relay validates req, builds the prompt, calls the generation service once and
// returns the generated text. Failures are *app_errors.ValidationError,
// *app_errors.GenerationError, or any other error for unexpected problems.
func (s *ChatService) Relay(ctx context.Context, exchangeID string, req *model.ChatRequest) (*model.ChatResponse, error) {
	logger := slog.With("exchange_id", exchangeID)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		metrics.RecordRelay("validation_error")
		return nil, ErrNoMessage
	}
	logger.Debug("Received chat request", "message_preview", truncate(message, 50), "history_len", len(req.History))

	fullPrompt := s.buildPrompt(message, req.History)
	logger.Debug("Calling Ollama", "prompt_length", len(fullPrompt), "prompt_preview", truncate(fullPrompt, 200))

	start := time.Now()
	text, err := s.llm.Generate(ctx, fullPrompt)
	metrics.ObserveGeneration(s.model, time.Since(start))
	if err != nil {
		var genErr *app_errors.GenerationError
		if errors.As(err, &genErr) {
			metrics.RecordRelay(genErr.Kind.String())
			logger.Error("Generation failed", "kind", genErr.Kind.String(), "message_preview", truncate(message, 50), "error", err)
		} else {
			metrics.RecordRelay("unexpected_error")
			logger.Error("Chat relay failed unexpectedly", "message_preview", truncate(message, 50), "error", err)
		}
		return nil, err
	}

	logger.Debug("Received response", "response_length", len(text), "response_preview", truncate(text, 100))
	metrics.RecordRelay("success")

	return &model.ChatResponse{Response: text, Timestamp: time.Now()}, nil
}

func (s *ChatService) buildPrompt(message string, history []model.PriorExchange) string {
	if s.promptMode == config.PromptModeEnhanced {
		metrics.RecordPromptTask(string(prompt.Classify(message)))
		return s.builder.BuildEnhanced(message, prompt.HistoryContext(history))
	}
	return prompt.Build(message, history)
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
