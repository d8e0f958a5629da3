package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.AppPort)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "llama3", cfg.OllamaModel)
	assert.Equal(t, PromptModeSimple, cfg.PromptMode)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "http://ollama:11434/")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("PROMPT_MODE", "Enhanced")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, ,http://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://ollama:11434", cfg.OllamaBaseURL, "trailing slash is trimmed")
	assert.Equal(t, "mistral", cfg.OllamaModel)
	assert.Equal(t, PromptModeEnhanced, cfg.PromptMode)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins())
}

func TestUnmarshal_InvalidPromptMode(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("PROMPT_MODE", "fancy")

	_, err := unmarshal(v)
	assert.ErrorContains(t, err, `invalid PROMPT_MODE "fancy"`)
}
