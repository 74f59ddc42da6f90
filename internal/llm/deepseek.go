package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jay870423/one-sentence/internal/common"
	"github.com/jay870423/one-sentence/internal/model"
)

const deepSeekBaseURL = "https://api.deepseek.com"

// deepSeekSystemPrompt pins the exact JSON shape, since the API offers no
// schema enforcement beyond JSON-object response mode.
const deepSeekSystemPrompt = `You are a bookkeeping record extractor. You MUST respond with ONLY valid JSON, no explanatory text and no markdown formatting.

Respond with a JSON object of the form {"transactions": [...]} where each element is an object with these fields:
- "amount": number, never negative
- "category": string
- "type": string, exactly "expense" or "income"
- "date": string, ISO calendar date YYYY-MM-DD
- "note": string, optional short description

If the statement contains no income or expense events, respond with {"transactions": []}.`

// deepSeekClient implements the Client interface for the DeepSeek
// chat-completions API.
type deepSeekClient struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
}

// newDeepSeekClient creates a new DeepSeek API client. The credential check
// happens here so a missing key fails before any network call.
func newDeepSeekClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: DeepSeek API key is required, set DEEPSEEK_API_KEY or llm.deepseek_api_key in the config file", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "deepseek-chat"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = deepSeekBaseURL
	}

	return &deepSeekClient{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// ExtractTransactions sends the extraction prompt to DeepSeek and
// normalizes the response content into a record list.
func (c *deepSeekClient) ExtractTransactions(ctx context.Context, prompt string) ([]model.ParseResult, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": deepSeekSystemPrompt,
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     c.temperature,
		"max_tokens":      c.maxTokens,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", strings.NewReader(string(jsonBody)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DeepSeek API error (status %d): %s", resp.StatusCode, upstreamErrorMessage(body))
	}

	var response deepSeekResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, nil
	}

	return normalizeRecords(response.Choices[0].Message.Content)
}

// upstreamErrorMessage extracts the error message from an API error body,
// falling back to the raw body when it isn't parseable.
func upstreamErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return string(body)
}

// deepSeekResponse represents the chat-completions envelope.
type deepSeekResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Created int64 `json:"created"`
}
