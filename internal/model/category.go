package model

// DefaultCategories is the fixed vocabulary the extractor is instructed to
// choose from. The set can be overridden via the `categories` config key;
// free-form values are still accepted at confirmation time since the model
// may drift from the vocabulary.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Entertainment",
	"Housing",
	"Utilities",
	"Medical",
	"Education",
	"Travel",
	"Salary",
	"Other",
}

// CategoryIndex returns the position of category in vocab, or -1.
func CategoryIndex(vocab []string, category string) int {
	for i, c := range vocab {
		if c == category {
			return i
		}
	}
	return -1
}
