package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/jay870423/one-sentence/internal/llm"
	"github.com/jay870423/one-sentence/internal/service"
)

// createParser builds the extraction parser for the configured provider.
// Credentials come from the config file first, then the environment; a
// missing key fails here with an actionable message, before any network call.
func createParser() (service.Extractor, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "gemini" // default provider
	}

	cfg := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Currency:    viper.GetString("currency"),
		Categories:  activeCategories(),
	}

	switch provider {
	case "gemini":
		apiKey := viper.GetString("llm.gemini_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		cfg.APIKey = apiKey

	case "deepseek":
		apiKey := viper.GetString("llm.deepseek_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("DEEPSEEK_API_KEY")
		}
		cfg.APIKey = apiKey

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}

	parser, err := llm.NewParser(cfg, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	return parser, nil
}
