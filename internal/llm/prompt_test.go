package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_Build(t *testing.T) {
	frozen := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		currency string
		contains []string
	}{
		{
			name:     "embeds date, weekday and input",
			input:    "breakfast 15, taxi yesterday 50",
			currency: "TWD",
			contains: []string{
				"2026-09-01",
				"Tuesday",
				"breakfast 15, taxi yesterday 50",
				"TWD",
			},
		},
		{
			name:     "embeds category vocabulary",
			input:    "coffee 5",
			currency: "USD",
			contains: []string{"- Food\n", "- Transport\n", "- Other\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewPromptBuilder(tt.currency, nil)
			prompt := b.Build(tt.input, frozen)

			for _, want := range tt.contains {
				assert.Contains(t, prompt, want)
			}
		})
	}
}

func TestPromptBuilder_Idempotent(t *testing.T) {
	frozen := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	b := NewPromptBuilder("TWD", nil)

	first := b.Build("lunch 120", frozen)
	second := b.Build("lunch 120", frozen)

	assert.Equal(t, first, second, "same input under a frozen clock must yield identical prompts")
}

func TestPromptBuilder_TrimsInput(t *testing.T) {
	frozen := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b := NewPromptBuilder("", nil)

	prompt := b.Build("  dinner 300  \n", frozen)

	assert.Contains(t, prompt, "dinner 300")
	assert.False(t, strings.Contains(prompt, "  dinner 300  "), "input should be trimmed")
}
