package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/jay870423/one-sentence/internal/model"
)

// PromptBuilder constructs the extraction instruction shared by all
// providers. Build is pure: the current time is an explicit parameter, so
// the same input under a frozen clock yields an identical prompt.
type PromptBuilder struct {
	Currency   string
	Categories []string
}

// NewPromptBuilder creates a builder, falling back to the default currency
// and category vocabulary when unset.
func NewPromptBuilder(currency string, categories []string) PromptBuilder {
	if currency == "" {
		currency = "TWD"
	}
	if len(categories) == 0 {
		categories = model.DefaultCategories
	}
	return PromptBuilder{Currency: currency, Categories: categories}
}

// Build produces the extraction prompt for one free-text statement.
func (b PromptBuilder) Build(input string, now time.Time) string {
	categoryList := ""
	for _, cat := range b.Categories {
		categoryList += fmt.Sprintf("- %s\n", cat)
	}

	return fmt.Sprintf(`You are a bookkeeping assistant. Extract every income or expense event from the user's statement below into structured records.

Today is %s (%s).

User statement:
%s

Extraction rules:
1. If the statement describes multiple events, split them into separate records.
2. Resolve relative date words strictly against today's date: "yesterday" is the day before today, "tomorrow" the day after, "the day after tomorrow" two days after. An event with no date stated happened today.
3. Dates must be ISO calendar dates in the form YYYY-MM-DD.
4. Amounts are numbers in %s. Expand unit slang: "1k" means 1000, "2.5k" means 2500. Amounts are never negative.
5. Choose the single best-fitting category for each record from this list:
%s6. Classify each record as "expense" (money spent) or "income" (money received).
7. Write a short note (a few words) describing the event. Reuse the user's own wording where possible.

Return records for every event you find, in the order they appear in the statement.`,
		now.Format(time.DateOnly),
		now.Weekday(),
		strings.TrimSpace(input),
		b.Currency,
		categoryList)
}
