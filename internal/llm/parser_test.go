package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay870423/one-sentence/internal/model"
)

// fakeClient returns canned records, capturing the prompt it was given.
type fakeClient struct {
	records    []model.ParseResult
	err        error
	lastPrompt string
}

func (f *fakeClient) ExtractTransactions(_ context.Context, prompt string) ([]model.ParseResult, error) {
	f.lastPrompt = prompt
	return f.records, f.err
}

func frozenClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}
}

func newTestParser(client Client) *Parser {
	return NewParserWithClient(client, NewPromptBuilder("TWD", nil), nil).WithClock(frozenClock())
}

func TestParser_PreservesLengthAndFillsDefaults(t *testing.T) {
	client := &fakeClient{records: []model.ParseResult{
		{Amount: 15, Category: "Food", Type: model.TypeExpense, Date: "2026-08-31", Note: "breakfast"},
		{Amount: 50, Category: "Transport", Type: model.TypeExpense}, // missing date and note
		{Amount: 2000, Category: "Salary", Type: model.TypeIncome, Date: ""},
	}}

	got, err := newTestParser(client).Parse(context.Background(), "stuff happened")
	require.NoError(t, err)
	require.Len(t, got, 3, "output length must equal the adapter's list length")

	for _, r := range got {
		assert.NotEmpty(t, r.Date, "every record has a date after post-processing")
		assert.NotEmpty(t, r.Note, "every record has a note after post-processing")
	}

	// Absent date becomes the invocation's today; absent note becomes the category.
	assert.Equal(t, "2026-09-01", got[1].Date)
	assert.Equal(t, "Transport", got[1].Note)
	// Present values are untouched.
	assert.Equal(t, "2026-08-31", got[0].Date)
	assert.Equal(t, "breakfast", got[0].Note)
}

func TestParser_NilOnEmpty(t *testing.T) {
	tests := []struct {
		name    string
		records []model.ParseResult
	}{
		{name: "nil result", records: nil},
		{name: "empty result", records: []model.ParseResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestParser(&fakeClient{records: tt.records}).Parse(context.Background(), "gibberish")
			require.NoError(t, err, "an empty extraction is not an error")
			assert.Nil(t, got)
		})
	}
}

func TestParser_WrapsClientError(t *testing.T) {
	boom := errors.New("upstream exploded")
	got, err := newTestParser(&fakeClient{err: boom}).Parse(context.Background(), "lunch 120")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, boom)
}

func TestParser_ClampsNegativeAmounts(t *testing.T) {
	client := &fakeClient{records: []model.ParseResult{
		{Amount: -30, Category: "Food", Type: model.TypeExpense, Date: "2026-09-01", Note: "snack"},
	}}

	got, err := newTestParser(client).Parse(context.Background(), "snack -30")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 30.0, got[0].Amount)
}

func TestParser_BuildsPromptFromInputAndClock(t *testing.T) {
	client := &fakeClient{}
	_, err := newTestParser(client).Parse(context.Background(), "dinner 300")
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "dinner 300")
	assert.Contains(t, client.lastPrompt, "2026-09-01")
}
