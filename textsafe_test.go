package textsafe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textsafe"
	"github.com/dmitrymomot/textsafe/pkg/sanitize"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []sanitize.Option
		expected string
	}{
		{
			name:     "defaults strip hidden and emoji clusters",
			input:    "Hello \U0001F44B World! Hidden\u200B text.",
			expected: "Hello  World! Hidden text.",
		},
		{
			name:     "emoji allowed when configured",
			input:    "Hi \U0001F30D",
			opts:     []sanitize.Option{sanitize.WithAllowEmoji(true), sanitize.WithStrictMode(false)},
			expected: "Hi \U0001F30D",
		},
		{
			name:     "replacement marks blocked clusters",
			input:    "a\u200Bb",
			opts:     []sanitize.Option{sanitize.WithReplacement("?")},
			expected: "a?b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textsafe.Sanitize(tt.input, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeConfigurationError(t *testing.T) {
	_, err := textsafe.Sanitize("x", sanitize.WithMaxTokens(-1))
	assert.ErrorIs(t, err, sanitize.ErrInvalidMaxTokens)
}
