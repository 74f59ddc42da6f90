package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jay870423/one-sentence/internal/model"
)

// Parser orchestrates extraction: it builds the prompt, dispatches to the
// configured provider and applies the shared post-processing defaults. Each
// invocation is independent and stateless; failures are terminal, the
// caller reports once and the user resubmits (no retries).
type Parser struct {
	client  Client
	logger  *slog.Logger
	clock   func() time.Time
	prompts PromptBuilder
}

// NewParser creates a parser for the configured provider.
func NewParser(cfg Config, logger *slog.Logger) (*Parser, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return NewParserWithClient(client, NewPromptBuilder(cfg.Currency, cfg.Categories), logger), nil
}

// NewParserWithClient wires an explicit client, letting tests substitute
// doubles without touching the environment.
func NewParserWithClient(client Client, prompts PromptBuilder, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		client:  client,
		prompts: prompts,
		logger:  logger,
		clock:   time.Now,
	}
}

// WithClock replaces the parser's clock. Tests freeze it to make prompt
// construction and date defaulting deterministic.
func (p *Parser) WithClock(clock func() time.Time) *Parser {
	p.clock = clock
	return p
}

// Parse extracts candidate records from one free-text statement. A nil
// result with nil error means no transactions were recognized; the caller
// must inform the user rather than treat it as a failure.
func (p *Parser) Parse(ctx context.Context, input string) ([]model.ParseResult, error) {
	now := p.clock()
	prompt := p.prompts.Build(input, now)

	records, err := p.client.ExtractTransactions(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	if len(records) == 0 {
		p.logger.Info("no transactions recognized", "input_len", len(input))
		return nil, nil
	}

	today := now.Format(time.DateOnly)
	for i := range records {
		if records[i].Date == "" {
			records[i].Date = today
		}
		if records[i].Note == "" {
			records[i].Note = records[i].Category
		}
		records[i].Amount = math.Abs(records[i].Amount)
	}

	p.logger.Info("extracted transactions",
		"count", len(records),
		"input_len", len(input))

	return records, nil
}
