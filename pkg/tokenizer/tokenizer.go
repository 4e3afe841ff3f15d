package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Tokenizer converts text into an ordered sequence of token strings.
// Implementations must be deterministic and free of side effects; the
// sanitizer may call Tokenize once per grapheme cluster.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(text string) ([]string, error)

// Tokenize calls f.
func (f Func) Tokenize(text string) ([]string, error) {
	return f(text)
}

// NewBasic returns a whitespace-splitting tokenizer that truncates each token
// to maxLength characters. Returns ErrInvalidMaxLength when maxLength is not
// positive.
func NewBasic(maxLength int) (Tokenizer, error) {
	if maxLength <= 0 {
		return nil, ErrInvalidMaxLength
	}

	return Func(func(text string) ([]string, error) {
		fields := strings.Fields(text)
		tokens := make([]string, 0, len(fields))
		for _, tok := range fields {
			if runes := []rune(tok); len(runes) > maxLength {
				tok = string(runes[:maxLength])
			}
			tokens = append(tokens, tok)
		}
		return tokens, nil
	}), nil
}

// EstimateTokens returns a fast token count estimate without a real
// vocabulary: rune count divided by three, never less than one for non-empty
// text. English averages around four characters per token and CJK around
// 1.5, so dividing by three slightly over-estimates mixed content, which is
// the safe direction for budget checks.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	if est := n / 3; est > 1 {
		return est
	}
	return 1
}
