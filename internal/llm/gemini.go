package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/jay870423/one-sentence/internal/common"
	"github.com/jay870423/one-sentence/internal/model"
)

// recordSchema declares the response shape Gemini must conform to: an array
// of records with required amount/category/type/date and an optional note.
// The API either honors the schema or errors, so any JSON that still fails
// to parse is surfaced as a parse failure rather than silently defaulted.
var recordSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"amount":   {Type: genai.TypeNumber},
			"category": {Type: genai.TypeString},
			"note":     {Type: genai.TypeString},
			"date":     {Type: genai.TypeString},
			"type": {
				Type: genai.TypeString,
				Enum: []string{string(model.TypeExpense), string(model.TypeIncome)},
			},
		},
		Required: []string{"amount", "category", "type", "date"},
	},
}

// geminiClient implements the Client interface for the Gemini API.
type geminiClient struct {
	apiKey      string
	model       string
	temperature float64
}

// newGeminiClient creates a new Gemini API client. The credential check
// happens here so a missing key fails before any network call.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: Gemini API key is required, set GEMINI_API_KEY or llm.gemini_api_key in the config file", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &geminiClient{
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: temperature,
	}, nil
}

// ExtractTransactions sends the extraction prompt to Gemini with the
// declared record schema and parses the returned text as a JSON array.
func (c *geminiClient) ExtractTransactions(ctx context.Context, prompt string) ([]model.ParseResult, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recordSchema,
		Temperature:      genai.Ptr(float32(c.temperature)),
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, nil
	}

	var records []model.ParseResult
	if err := json.Unmarshal([]byte(cleanMarkdownFences(rawText)), &records); err != nil {
		return nil, fmt.Errorf("failed to parse schema-constrained response: %w", err)
	}

	return records, nil
}
