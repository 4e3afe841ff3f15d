package sanitize_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textsafe/pkg/grapheme"
	"github.com/dmitrymomot/textsafe/pkg/sanitize"
	"github.com/dmitrymomot/textsafe/pkg/tokenizer"
)

// oneTokenPerCluster never triggers the explosion guard; tests that exercise
// the other checks use it to keep the tokenizer out of the picture.
var oneTokenPerCluster = tokenizer.Func(func(text string) ([]string, error) {
	return []string{text}, nil
})

func mustSanitizer(t *testing.T, opts ...sanitize.Option) *sanitize.Sanitizer {
	t.Helper()
	s, err := sanitize.New(oneTokenPerCluster, opts...)
	require.NoError(t, err)
	return s
}

func TestSanitizeDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean text unchanged",
			input:    "Hello World",
			expected: "Hello World",
		},
		{
			name:     "zero width space removed",
			input:    "Hello\u200B",
			expected: "Hello",
		},
		{
			name:     "hidden payload splitters removed",
			input:    "pay\u200Bload\u200B!",
			expected: "payload!",
		},
		{
			name:     "emoji removed surrounding text intact",
			input:    "Good \U0001F44D job",
			expected: "Good  job",
		},
		{
			name:     "zwj emoji sequence removed as one unit",
			input:    "dev \U0001F469\u200D\U0001F4BB here",
			expected: "dev  here",
		},
		{
			name:     "bidi override removed",
			input:    "abc\u202Edef",
			expected: "abcdef",
		},
		{
			name:     "fullwidth text normalized before filtering",
			input:    "Ｈｅｌｌｏ",
			expected: "Hello",
		},
		{
			name:     "malformed utf8 repaired then blocked",
			input:    "ab\xffcd",
			expected: "abcd",
		},
		{
			name:     "newline stripped in strict mode",
			input:    "line1\nline2",
			expected: "line1line2",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	s := mustSanitizer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Sanitize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeAllowEmoji(t *testing.T) {
	s := mustSanitizer(t,
		sanitize.WithAllowEmoji(true),
		sanitize.WithStrictMode(false),
	)

	got, err := s.Sanitize("Hello \U0001F30D!")
	require.NoError(t, err)
	assert.Equal(t, "Hello \U0001F30D!", got)
}

func TestSanitizeReplacementString(t *testing.T) {
	s := mustSanitizer(t, sanitize.WithReplacement("\u25A1"))

	got, err := s.Sanitize("a\u200Bb\U0001F600c")
	require.NoError(t, err)
	assert.Equal(t, "a\u25A1b\u25A1c", got)
}

func TestSanitizeCustomDisallowed(t *testing.T) {
	s := mustSanitizer(t, sanitize.WithDisallowed('#'))

	got, err := s.Sanitize("tag #1 and #2")
	require.NoError(t, err)
	assert.Equal(t, "tag 1 and 2", got)
}

func TestSanitizeTokenExplosion(t *testing.T) {
	// The letter X stands in for a cluster that expands into five tokens
	// under the target model's tokenizer.
	explosive := tokenizer.Func(func(text string) ([]string, error) {
		if strings.Contains(text, "X") {
			return []string{"t1", "t2", "t3", "t4", "t5"}, nil
		}
		return []string{text}, nil
	})

	s, err := sanitize.New(explosive, sanitize.WithMaxTokens(3))
	require.NoError(t, err)

	got, err := s.Sanitize("aXb")
	require.NoError(t, err)
	assert.Equal(t, "ab", got)

	// Raising the budget above the expansion lets the cluster through.
	s, err = sanitize.New(explosive, sanitize.WithMaxTokens(5))
	require.NoError(t, err)

	got, err = s.Sanitize("aXb")
	require.NoError(t, err)
	assert.Equal(t, "aXb", got)
}

func TestSanitizeTokenizerFailureAbortsCall(t *testing.T) {
	boom := errors.New("tokenizer exploded")
	failing := tokenizer.Func(func(text string) ([]string, error) {
		if text == "b" {
			return nil, boom
		}
		return []string{text}, nil
	})

	s, err := sanitize.New(failing)
	require.NoError(t, err)

	got, err := s.Sanitize("abc")
	assert.Empty(t, got, "no partial result on tokenizer failure")
	assert.ErrorIs(t, err, sanitize.ErrTokenizerFailed)
	assert.ErrorIs(t, err, boom)
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello\u200B World \U0001F600",
		"Ｈｅｌｌｏ ﬁle \u202Eevil",
		"plain ascii",
		"née café 日本語",
		"ab\xffcd",
	}

	s := mustSanitizer(t)
	for _, in := range inputs {
		once, err := s.Sanitize(in)
		require.NoError(t, err)
		twice, err := s.Sanitize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "sanitize must be idempotent for %q", in)
	}
}

func TestSanitizeClusterCountPreserved(t *testing.T) {
	// With a single-cluster replacement the output has exactly as many
	// grapheme clusters as the normalized input.
	s := mustSanitizer(t, sanitize.WithReplacement("\u25A1"))

	in := "a\u200Bb \U0001F469\u200D\U0001F4BB end"
	got, rep, err := s.SanitizeReport(in)
	require.NoError(t, err)
	assert.Equal(t, rep.Clusters, grapheme.Count(got))
}

func TestSanitizeReport(t *testing.T) {
	s := mustSanitizer(t)

	got, rep, err := s.SanitizeReport("hi\u200B \U0001F600\n")
	require.NoError(t, err)
	assert.Equal(t, "hi ", got)
	assert.Equal(t, 6, rep.Clusters)
	assert.Equal(t, 3, rep.Replaced)
	assert.Equal(t, map[sanitize.Reason]int{
		sanitize.ReasonDisallowedChar:    1,
		sanitize.ReasonEmoji:             1,
		sanitize.ReasonDangerousCategory: 1,
	}, rep.Reasons)
}

func TestSanitizeReportCleanInput(t *testing.T) {
	s := mustSanitizer(t)

	got, rep, err := s.SanitizeReport("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, 3, rep.Clusters)
	assert.Zero(t, rep.Replaced)
	assert.Nil(t, rep.Reasons)
}

func TestSanitizeParallelMatchesSequential(t *testing.T) {
	in := "Hello\u200B Ｗｏｒｌｄ \U0001F600 mixed 日本語 \u202Eevil e\u0301nd"

	seq := mustSanitizer(t)
	par := mustSanitizer(t, sanitize.WithWorkers(8))

	want, wantRep, err := seq.SanitizeReport(in)
	require.NoError(t, err)
	got, gotRep, err := par.SanitizeReport(in)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, wantRep, gotRep)
}

func TestSanitizeParallelTokenizerFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := tokenizer.Func(func(text string) ([]string, error) {
		if text == "x" {
			return nil, boom
		}
		return []string{text}, nil
	})

	s, err := sanitize.New(failing, sanitize.WithWorkers(4))
	require.NoError(t, err)

	got, err := s.Sanitize("abcxdef")
	assert.Empty(t, got)
	assert.ErrorIs(t, err, sanitize.ErrTokenizerFailed)
}

func TestSanitizeBatch(t *testing.T) {
	s := mustSanitizer(t)

	texts := []string{"one\u200B", "two \U0001F600", "three"}
	got, err := s.SanitizeBatch(context.Background(), texts)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two ", "three"}, got)
}

func TestSanitizeBatchCanceledContext(t *testing.T) {
	s := mustSanitizer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SanitizeBatch(ctx, []string{"a", "b"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		tk   tokenizer.Tokenizer
		opts []sanitize.Option
		err  error
	}{
		{
			name: "nil tokenizer",
			tk:   nil,
			err:  sanitize.ErrNilTokenizer,
		},
		{
			name: "zero max tokens",
			tk:   oneTokenPerCluster,
			opts: []sanitize.Option{sanitize.WithMaxTokens(0)},
			err:  sanitize.ErrInvalidMaxTokens,
		},
		{
			name: "negative max tokens",
			tk:   oneTokenPerCluster,
			opts: []sanitize.Option{sanitize.WithMaxTokens(-2)},
			err:  sanitize.ErrInvalidMaxTokens,
		},
		{
			name: "zero workers",
			tk:   oneTokenPerCluster,
			opts: []sanitize.Option{sanitize.WithWorkers(0)},
			err:  sanitize.ErrInvalidWorkers,
		},
		{
			name: "unknown category",
			tk:   oneTokenPerCluster,
			opts: []sanitize.Option{sanitize.WithDangerousCategories("nope")},
			err:  sanitize.ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := sanitize.New(tt.tk, tt.opts...)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
