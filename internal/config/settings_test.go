package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vocaquiz/internal/config"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	t.Chdir(t.TempDir())
	v := viper.New()
	require.NoError(t, config.Prepare(v))
	return v
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HINT_PROVIDER", "")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	s, err := config.Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, 8000, s.Port)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, config.ProviderGemini, s.Hint.Provider)
	assert.Equal(t, config.DefaultGeminiModel, s.Hint.GeminiModel)
	assert.Equal(t, config.DefaultOllamaHost, s.Hint.OllamaHost)
	assert.Empty(t, s.Hint.GeminiAPIKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://quiz@localhost/quiz")
	t.Setenv("PORT", "9001")
	t.Setenv("HINT_PROVIDER", "Ollama")
	t.Setenv("OLLAMA_HINT_MODEL", "gemma2")

	s, err := config.Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "postgres://quiz@localhost/quiz", s.DatabaseDSN)
	assert.Equal(t, 9001, s.Port)
	assert.Equal(t, config.ProviderOllama, s.Hint.Provider)
	assert.Equal(t, "gemma2", s.Hint.OllamaModel)
}

func TestGeminiKeyFallsBackToGoogleKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	s, err := config.Load(newViper(t))
	require.NoError(t, err)
	assert.Equal(t, "google-key", s.Hint.GeminiAPIKey)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("HINT_PROVIDER", "openai")

	_, err := config.Load(newViper(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai")
}
