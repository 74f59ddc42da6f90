package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("TEST_DATA_DIR", "/var/data")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty path", input: "", expected: ""},
		{name: "absolute path unchanged", input: "/tmp/ledger.db", expected: "/tmp/ledger.db"},
		{name: "tilde expands to home", input: "~/ledger.db", expected: filepath.Join(home, "ledger.db")},
		{name: "bare tilde", input: "~", expected: home},
		{name: "environment variable", input: "$TEST_DATA_DIR/ledger.db", expected: "/var/data/ledger.db"},
		{name: "tilde mid-path untouched", input: "/tmp/~backup", expected: "/tmp/~backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath()
	assert.True(t, filepath.IsAbs(path))
	assert.Contains(t, path, "one-sentence")
	assert.Equal(t, "ledger.db", filepath.Base(path))
}
