package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay870423/one-sentence/internal/model"
)

func TestNormalizeRecords_EquivalentShapes(t *testing.T) {
	// The same payload wrapped three ways must normalize identically.
	record := `{"amount": 15, "category": "Food", "type": "expense", "date": "2026-09-01", "note": "breakfast"}`

	tests := []struct {
		name    string
		content string
	}{
		{name: "bare array", content: `[` + record + `]`},
		{name: "wrapper object", content: `{"transactions": [` + record + `]}`},
		{name: "single object", content: record},
	}

	want := []model.ParseResult{{
		Amount:   15,
		Category: "Food",
		Type:     model.TypeExpense,
		Date:     "2026-09-01",
		Note:     "breakfast",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeRecords(tt.content)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalizeRecords_EmptyAndMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantNil bool
		wantErr bool
	}{
		{name: "empty content", content: "", wantNil: true},
		{name: "whitespace only", content: "  \n ", wantNil: true},
		{name: "empty wrapper array", content: `{"transactions": []}`, wantNil: false},
		{name: "truncated array", content: `[{"amount": 1`, wantErr: true},
		{name: "wrapper holding non-array", content: `{"transactions": {"amount": 1}}`, wantErr: true},
		{name: "plain text", content: "no transactions here", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeRecords(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestNormalizeRecords_MarkdownFences(t *testing.T) {
	content := "```json\n[{\"amount\": 50, \"category\": \"Transport\", \"type\": \"expense\", \"date\": \"2026-08-31\"}]\n```"

	got, err := normalizeRecords(content)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 50.0, got[0].Amount)
	assert.Equal(t, "Transport", got[0].Category)
}

func TestCleanMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no fences", raw: `[1]`, want: `[1]`},
		{name: "json fence", raw: "```json\n[1]\n```", want: `[1]`},
		{name: "bare fence", raw: "```\n[1]\n```", want: `[1]`},
		{name: "surrounding whitespace", raw: "  [1]\n", want: `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownFences(tt.raw))
		})
	}
}
