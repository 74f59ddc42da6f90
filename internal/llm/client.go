package llm

import (
	"context"

	"github.com/jay870423/one-sentence/internal/model"
)

// Client defines the interface for LLM providers. Implementations return
// (nil, nil) when the upstream produced no usable content; that outcome is
// "nothing recognized", not an error.
type Client interface {
	ExtractTransactions(ctx context.Context, prompt string) ([]model.ParseResult, error)
}

// Config holds configuration for the extraction parser. Clients are
// explicitly constructed from it; there is no package-level client state.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string // overrides the provider endpoint, used by tests
	Currency    string
	Categories  []string
	Temperature float64
	MaxTokens   int
}
