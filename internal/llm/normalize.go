package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jay870423/one-sentence/internal/model"
)

// wrapperKey is the conventional key instruction-only providers use when
// they wrap the record array in an object to satisfy JSON-object response
// mode.
const wrapperKey = "transactions"

// normalizeRecords maps the three response shapes an instruction-only
// provider may produce onto one record list:
//
//	[{...}, ...]                  -> the array itself
//	{"transactions": [{...}]}     -> the wrapped array
//	{...}                         -> a one-element list
//
// Empty content yields (nil, nil). Anything else is a malformed response.
func normalizeRecords(content string) ([]model.ParseResult, error) {
	content = strings.TrimSpace(cleanMarkdownFences(content))
	if content == "" {
		return nil, nil
	}

	switch content[0] {
	case '[':
		var records []model.ParseResult
		if err := json.Unmarshal([]byte(content), &records); err != nil {
			return nil, fmt.Errorf("failed to parse JSON array: %w", err)
		}
		return records, nil

	case '{':
		// Probe for the wrapper key before treating the object as a record.
		var wrapper struct {
			Transactions json.RawMessage `json:"transactions"`
		}
		if err := json.Unmarshal([]byte(content), &wrapper); err != nil {
			return nil, fmt.Errorf("failed to parse JSON object: %w", err)
		}
		if len(wrapper.Transactions) > 0 {
			var records []model.ParseResult
			if err := json.Unmarshal(wrapper.Transactions, &records); err != nil {
				return nil, fmt.Errorf("failed to parse %q array: %w", wrapperKey, err)
			}
			return records, nil
		}

		var record model.ParseResult
		if err := json.Unmarshal([]byte(content), &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON record: %w", err)
		}
		return []model.ParseResult{record}, nil

	default:
		return nil, fmt.Errorf("unexpected response shape starting with %q", content[0])
	}
}

// cleanMarkdownFences strips ```json ... ``` wrappers that models sometimes
// emit despite instructions.
func cleanMarkdownFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
