package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Positive(t, cfg.Server.ExtractTimeout)
}

func TestLoadRequiresProviderKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("EXTRACT_PROVIDER", ProviderGemini)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadOpenRouterProvider(t *testing.T) {
	t.Setenv("EXTRACT_PROVIDER", ProviderOpenRouter)
	t.Setenv("OPENROUTER_API_KEY", "test-key")
	t.Setenv("OPENROUTER_MODEL", "openai/gpt-oss-120b")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "openai/gpt-oss-120b", cfg.OpenRouter.Model)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("EXTRACT_PROVIDER", "palantir")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}
