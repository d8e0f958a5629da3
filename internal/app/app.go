package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"bi-assistant/internal/api"
	"bi-assistant/internal/config"
	"bi-assistant/internal/llm"
	"bi-assistant/internal/metrics"
	"bi-assistant/internal/prompt"
	"bi-assistant/internal/service"
)

// App holds the wired dependencies of the server.
type App struct {
	Config   *config.Config
	Server   *http.Server
	Provider llm.LLMProvider
	Registry *prometheus.Registry
}

// NewApp wires the services, handlers and router described by cfg.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg.OllamaBaseURL == "" {
		return nil, errors.New("ollama base url is not configured")
	}

	reg := prometheus.NewRegistry()
	metrics.Register(reg)

	provider := llm.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel)

	var templates *prompt.TemplateStore
	if cfg.PromptsDir != "" {
		templates = prompt.NewTemplateStore(os.DirFS(cfg.PromptsDir))
	}
	chatService := service.NewChatService(provider, prompt.NewBuilder(templates), cfg)
	healthService := service.NewHealthService(provider)

	chatHandler := api.NewChatHandler(chatService)
	healthHandler := api.NewHealthHandler(healthService)
	router := api.NewRouter(chatHandler, healthHandler, reg, cfg.AllowedOrigins())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		// Must outlast the 120s generation timeout.
		WriteTimeout: llm.DefaultGenerateTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{Config: cfg, Server: server, Provider: provider, Registry: reg}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}

	logBanner(cfg)
	probeOllama(app.Provider, cfg.OllamaBaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "url", fmt.Sprintf("http://localhost:%d", cfg.AppPort))
		serverErr <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func logBanner(cfg *config.Config) {
	slog.Info("Business Intelligence Assistant - Using Ollama",
		"ollama_url", cfg.OllamaBaseURL,
		"model", cfg.OllamaModel,
		"prompt_mode", cfg.PromptMode,
	)
	slog.Info("Setup: install Ollama from https://ollama.ai, pull the model, and keep Ollama running.",
		"pull_command", "ollama pull "+cfg.OllamaModel,
	)
}

// probeOllama logs whether Ollama is reachable at startup. It never blocks
// startup; /health reports the live status.
func probeOllama(provider llm.LLMProvider, ollamaURL string) {
	if err := provider.Ping(context.Background()); err != nil {
		slog.Warn("Ollama is not reachable yet. Chat requests will fail until it is running.", "url", ollamaURL, "error", err)
		return
	}
	slog.Info("Ollama is ready.", "url", ollamaURL)
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
