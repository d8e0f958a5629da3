// The `_test` suffix creates a "black box" test package that can only use
// the exported API of package api.
package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bi-assistant/internal/api"
	app_errors "bi-assistant/internal/errors"
	"bi-assistant/internal/interfaces/mocks"
	"bi-assistant/internal/model"
)

func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService) {
	mockChatSvc := mocks.NewMockChatService(t)
	return api.NewChatHandler(mockChatSvc), mockChatSvc
}

func postChat(handler *api.ChatHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.HandleChat(rr, req)
	return rr
}

// TestChatHandler_HandleChat tests the POST /chat endpoint.
//
// GOAL: Verify that the handler validates input, calls the relay service and
// maps every error kind to the right status code and client message.
func TestChatHandler_HandleChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockChatSvc := setupChatHandler(t)
		ts := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		mockChatSvc.On("Relay", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(r *model.ChatRequest) bool {
			return r.Message == "What is churn rate?" && len(r.History) == 1 && r.History[0].User == "hi"
		})).Return(&model.ChatResponse{Response: "Churn is...", Timestamp: ts}, nil).Once()

		rr := postChat(handler, `{"message":"What is churn rate?","history":[{"user":"hi","assistant":"hello"}]}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.NotEmpty(t, rr.Header().Get(api.ExchangeIDHeader))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Churn is...", body["response"])
		assert.Equal(t, "2026-10-19T12:00:00Z", body["timestamp"])
	})

	t.Run("Failure - Empty message", func(t *testing.T) {
		handler, mockChatSvc := setupChatHandler(t)

		for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`, ``} {
			rr := postChat(handler, body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, body)
			assert.JSONEq(t, `{"error":"No message provided"}`, rr.Body.String(), body)
		}
		mockChatSvc.AssertNotCalled(t, "Relay", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		rr := postChat(handler, `{"message":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid request payload"}`, rr.Body.String())
	})

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Unreachable",
			err:      &app_errors.GenerationError{Kind: app_errors.Unreachable, Err: errors.New("connection refused")},
			expected: "Cannot connect to Ollama. Make sure Ollama is running.",
		},
		{
			name:     "Timeout",
			err:      &app_errors.GenerationError{Kind: app_errors.Timeout},
			expected: "Ollama request timed out. The model might be loading or the prompt is too long. Try a shorter question.",
		},
		{
			name:     "Upstream status",
			err:      &app_errors.GenerationError{Kind: app_errors.UpstreamStatus, StatusCode: 500, Err: errors.New("secret upstream body")},
			expected: "Server error: Ollama API error: status 500",
		},
		{
			name:     "Empty output",
			err:      &app_errors.GenerationError{Kind: app_errors.EmptyOutput, Hint: "Try again or check Ollama logs."},
			expected: "Server error: Ollama returned empty response. Try again or check Ollama logs.",
		},
		{
			name:     "Unexpected",
			err:      errors.New("nil pointer somewhere deep"),
			expected: "Server error: an unexpected internal error occurred.",
		},
	}

	for _, tc := range testCases {
		t.Run("Failure - "+tc.name, func(t *testing.T) {
			handler, mockChatSvc := setupChatHandler(t)
			mockChatSvc.On("Relay", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rr := postChat(handler, `{"message":"hello"}`)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			var body api.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.expected, body.Error)
		})
	}
}

// TestHealthHandler_HandleHealth tests the GET /health endpoint.
func TestHealthHandler_HandleHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		mockHealthSvc := mocks.NewMockHealthService(t)
		mockHealthSvc.On("Check", mock.Anything).Return(&model.HealthStatus{
			Status: "healthy", Service: "BI Assistant (Ollama)", OllamaConnected: true,
		}).Once()

		rr := httptest.NewRecorder()
		api.NewHealthHandler(mockHealthSvc).HandleHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"healthy","service":"BI Assistant (Ollama)","ollama_connected":true}`, rr.Body.String())
	})

	t.Run("Degraded", func(t *testing.T) {
		mockHealthSvc := mocks.NewMockHealthService(t)
		mockHealthSvc.On("Check", mock.Anything).Return(&model.HealthStatus{
			Status: "degraded", Service: "BI Assistant (Ollama)", OllamaConnected: false, Message: "Ollama not running",
		}).Once()

		rr := httptest.NewRecorder()
		api.NewHealthHandler(mockHealthSvc).HandleHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), `"ollama_connected":false`)
	})
}
