package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	app_errors "bi-assistant/internal/errors"
)

const (
	// DefaultGenerateTimeout bounds a single /api/generate call.
	DefaultGenerateTimeout = 120 * time.Second
	// DefaultPingTimeout bounds a single /api/tags liveness probe.
	DefaultPingTimeout = 5 * time.Second

	defaultTemperature = 0.7
	defaultNumPredict  = 1000

	unreachableHint = "Make sure Ollama is running. Install from https://ollama.ai"
	timeoutHint     = "The model might be loading or the prompt is too long. Try a shorter question."
	emptyOutputHint = "Try again or check Ollama logs."
)

// LLMProvider defines the interface for interacting with a language model.
type LLMProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Ping(ctx context.Context) error
}

// GenerateRequest is the body sent to /api/generate.
type GenerateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options GenerateOptions `json:"options"`
}

// GenerateOptions holds the fixed decoding parameters.
type GenerateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

// GenerateResponse is the part of the /api/generate reply the relay consumes.
type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaProvider struct {
	client      *http.Client
	pingTimeout time.Duration
	url         string
	model       string
}

// Option customises an ollamaProvider.
type Option func(*ollamaProvider)

// WithGenerateTimeout overrides DefaultGenerateTimeout.
func WithGenerateTimeout(d time.Duration) Option {
	return func(p *ollamaProvider) { p.client.Timeout = d }
}

// WithPingTimeout overrides DefaultPingTimeout.
func WithPingTimeout(d time.Duration) Option {
	return func(p *ollamaProvider) { p.pingTimeout = d }
}

func NewOllamaProvider(url, model string, opts ...Option) LLMProvider {
	p := &ollamaProvider{
		client:      &http.Client{Timeout: DefaultGenerateTimeout},
		pingTimeout: DefaultPingTimeout,
		url:         strings.TrimRight(url, "/"),
		model:       model,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate sends prompt to /api/generate once and returns the generated text.
// Cancellation of ctx is ignored; the call is bounded only by the client timeout.
// Every failure is a *app_errors.GenerationError.
func (p *ollamaProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(&GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		Stream: false,
		Options: GenerateOptions{
			Temperature: defaultTemperature,
			NumPredict:  defaultNumPredict,
		},
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodPost, p.url+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", transportError(err)
	}
	defer func() {
		if bErr := resp.Body.Close(); bErr != nil {
			slog.Warn("Failed to close generate response body", "error", bErr)
		}
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &app_errors.GenerationError{
			Kind:       app_errors.UpstreamStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("api returned non-2xx status %d: %s", resp.StatusCode, string(bodyBytes)),
		}
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(bodyBytes, &genResp); err != nil {
		return "", &app_errors.GenerationError{
			Kind: app_errors.EmptyOutput,
			Hint: emptyOutputHint,
			Err:  fmt.Errorf("could not decode response: %w", err),
		}
	}
	if strings.TrimSpace(genResp.Response) == "" {
		return "", &app_errors.GenerationError{Kind: app_errors.EmptyOutput, Hint: emptyOutputHint}
	}

	return genResp.Response, nil
}

// Ping checks that Ollama answers GET /api/tags with a 2xx status.
func (p *ollamaProvider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.pingTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer func() {
		if bErr := resp.Body.Close(); bErr != nil {
			slog.Warn("Failed to close tags response body", "error", bErr)
		}
	}()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api returned non-2xx status %d", resp.StatusCode)
	}
	return nil
}

// transportError classifies an error returned by the HTTP client.
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &app_errors.GenerationError{Kind: app_errors.Timeout, Hint: timeoutHint, Err: err}
	}
	return &app_errors.GenerationError{Kind: app_errors.Unreachable, Hint: unreachableHint, Err: err}
}
