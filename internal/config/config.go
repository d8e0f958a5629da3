package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	PromptModeSimple   = "simple"
	PromptModeEnhanced = "enhanced"
)

type Config struct {
	AppPort            int    `mapstructure:"APP_PORT"`
	OllamaBaseURL      string `mapstructure:"OLLAMA_BASE_URL"`
	OllamaModel        string `mapstructure:"OLLAMA_MODEL"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	PromptsDir         string `mapstructure:"PROMPTS_DIR"`
	PromptMode         string `mapstructure:"PROMPT_MODE"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// AllowedOrigins splits CORSAllowedOrigins on commas, dropping blanks.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func LoadConfig() (*Config, error) {
	v := viper.GetViper()
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", 5000)
	v.SetDefault("OLLAMA_BASE_URL", "http://localhost:11434")
	v.SetDefault("OLLAMA_MODEL", "llama3")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("PROMPTS_DIR", "./prompts")
	v.SetDefault("PROMPT_MODE", PromptModeSimple)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.OllamaBaseURL = strings.TrimRight(cfg.OllamaBaseURL, "/")
	cfg.PromptMode = strings.ToLower(strings.TrimSpace(cfg.PromptMode))
	if cfg.PromptMode != PromptModeSimple && cfg.PromptMode != PromptModeEnhanced {
		return nil, fmt.Errorf("invalid PROMPT_MODE %q: must be %q or %q", cfg.PromptMode, PromptModeSimple, PromptModeEnhanced)
	}

	return &cfg, nil
}
