// Package config loads the application configuration from environment
// variables and an optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Supported extraction backend providers.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Config is the application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Provider   string           `mapstructure:"provider"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	CORS       CORSConfig       `mapstructure:"cors"`
	LogLevel   string           `mapstructure:"log_level"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	ExtractTimeout time.Duration `mapstructure:"extract_timeout"`
}

// GeminiConfig holds Gemini backend settings.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// OpenRouterConfig holds OpenRouter backend settings.
type OpenRouterConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// CORSConfig holds CORS settings for the HTTP boundary.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Load reads the configuration from the environment with sane defaults
// and validates the settings required by the selected provider.
func Load() (*Config, error) {
	setDefaults()

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("provider", "EXTRACT_PROVIDER")
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("gemini.model", "GEMINI_MODEL")
	viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	viper.BindEnv("openrouter.max_tokens", "OPENROUTER_MAX_TOKENS")
	viper.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")
	viper.BindEnv("log_level", "LOG_LEVEL")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "90s")
	viper.SetDefault("server.idle_timeout", "120s")
	// Generative responses can take tens of seconds.
	viper.SetDefault("server.extract_timeout", "60s")

	viper.SetDefault("provider", ProviderGemini)
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("openrouter.model", "openai/gpt-oss-120b")
	viper.SetDefault("openrouter.max_tokens", 2048)
	viper.SetDefault("openrouter.timeout", "60s")

	viper.SetDefault("cors.allow_origins", []string{"http://localhost:8081"})
	viper.SetDefault("log_level", "info")
}

func validate(cfg *Config) error {
	if cfg.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderOpenRouter:
		if cfg.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	default:
		return fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	return nil
}
