package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"

	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"
	DefaultOllamaModel    = "llama3.1"
	DefaultOllamaHost     = "http://localhost:11434"
)

type Settings struct {
	DatabaseDSN string
	Port        int
	LogLevel    string
	LogFormat   string
	Hint        HintSettings
}

// HintSettings selects the LLM backend used for quiz hints.
type HintSettings struct {
	Provider string

	GeminiAPIKey string
	GeminiModel  string

	AnthropicAPIKey string
	AnthropicModel  string

	OllamaHost  string
	OllamaModel string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8000)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("hint_provider", ProviderGemini)
	v.SetDefault("gemini_hint_model", DefaultGeminiModel)
	v.SetDefault("anthropic_hint_model", DefaultAnthropicModel)
	v.SetDefault("ollama_host", DefaultOllamaHost)
	v.SetDefault("ollama_hint_model", DefaultOllamaModel)
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("database_dsn", "DATABASE_DSN")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("log_format", "LOG_FORMAT")
	_ = v.BindEnv("hint_provider", "HINT_PROVIDER")
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY", "GOOGLE_API_KEY")
	_ = v.BindEnv("gemini_hint_model", "GEMINI_HINT_MODEL")
	_ = v.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("anthropic_hint_model", "ANTHROPIC_HINT_MODEL")
	_ = v.BindEnv("ollama_host", "OLLAMA_HOST")
	_ = v.BindEnv("ollama_hint_model", "OLLAMA_HINT_MODEL")
}

// Prepare registers defaults and environment bindings on v and reads an
// optional .env file from the working directory or ./config.
func Prepare(v *viper.Viper) error {
	setDefaults(v)
	bindEnv(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

// Load builds Settings from an already prepared viper instance.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		DatabaseDSN: v.GetString("database_dsn"),
		Port:        v.GetInt("port"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		Hint: HintSettings{
			Provider:        strings.ToLower(strings.TrimSpace(v.GetString("hint_provider"))),
			GeminiAPIKey:    v.GetString("gemini_api_key"),
			GeminiModel:     v.GetString("gemini_hint_model"),
			AnthropicAPIKey: v.GetString("anthropic_api_key"),
			AnthropicModel:  v.GetString("anthropic_hint_model"),
			OllamaHost:      v.GetString("ollama_host"),
			OllamaModel:     v.GetString("ollama_hint_model"),
		},
	}

	if s.Port <= 0 || s.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", s.Port)
	}

	switch s.Hint.Provider {
	case ProviderGemini, ProviderAnthropic, ProviderOllama:
	default:
		return nil, fmt.Errorf("unknown hint provider %q", s.Hint.Provider)
	}

	return s, nil
}
