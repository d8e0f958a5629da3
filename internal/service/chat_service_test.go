package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bi-assistant/internal/config"
	app_errors "bi-assistant/internal/errors"
	mock_llm "bi-assistant/internal/llm/mocks"
	"bi-assistant/internal/model"
	"bi-assistant/internal/prompt"
	"bi-assistant/internal/service"
)

func setupChatService(t *testing.T, mode string) (*service.ChatService, *mock_llm.MockLLMProvider) {
	provider := mock_llm.NewMockLLMProvider(t)
	templates := prompt.NewTemplateStore(fstest.MapFS{
		"report_generation.txt": {Data: []byte("REPORT TEMPLATE")},
	})
	cfg := &config.Config{OllamaModel: "llama3", PromptMode: mode}
	return service.NewChatService(provider, prompt.NewBuilder(templates), cfg), provider
}

func TestChatService_Relay(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		chatService, provider := setupChatService(t, config.PromptModeSimple)
		history := []model.PriorExchange{{User: "one"}, {User: "two"}, {User: "three"}}
		expectedPrompt := prompt.Build("What is churn rate?", history)
		provider.On("Generate", mock.Anything, expectedPrompt).Return("Churn rate is...", nil).Once()

		before := time.Now()
		resp, err := chatService.Relay(ctx, "ex-1", &model.ChatRequest{Message: "  What is churn rate?  ", History: history})

		require.NoError(t, err)
		assert.Equal(t, "Churn rate is...", resp.Response)
		assert.WithinDuration(t, before, resp.Timestamp, time.Second)
	})

	t.Run("Empty message is rejected before any call", func(t *testing.T) {
		chatService, provider := setupChatService(t, config.PromptModeSimple)

		resp, err := chatService.Relay(ctx, "ex-2", &model.ChatRequest{Message: "   "})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		assert.Equal(t, "No message provided", err.Error())
		provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Generation error is passed through", func(t *testing.T) {
		chatService, provider := setupChatService(t, config.PromptModeSimple)
		genErr := &app_errors.GenerationError{Kind: app_errors.Unreachable}
		provider.On("Generate", mock.Anything, mock.Anything).Return("", genErr).Once()

		resp, err := chatService.Relay(ctx, "ex-3", &model.ChatRequest{Message: "hi"})

		assert.Nil(t, resp)
		assert.True(t, app_errors.IsGenerationKind(err, app_errors.Unreachable))
	})

	t.Run("Unexpected error is passed through", func(t *testing.T) {
		chatService, provider := setupChatService(t, config.PromptModeSimple)
		provider.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("boom")).Once()

		_, err := chatService.Relay(ctx, "ex-4", &model.ChatRequest{Message: "hi"})

		assert.EqualError(t, err, "boom")
	})

	t.Run("Enhanced mode uses the template path", func(t *testing.T) {
		chatService, provider := setupChatService(t, config.PromptModeEnhanced)
		provider.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "REPORT TEMPLATE") &&
				strings.Contains(p, "User request: Draft a report") &&
				strings.HasSuffix(p, "Previous conversation context:\nPrevious: earlier\n")
		})).Return("## Executive summary", nil).Once()

		resp, err := chatService.Relay(ctx, "ex-5", &model.ChatRequest{
			Message: "Draft a report",
			History: []model.PriorExchange{{User: "earlier"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "## Executive summary", resp.Response)
	})
}
