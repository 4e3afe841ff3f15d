package textsafe

import (
	"github.com/dmitrymomot/textsafe/pkg/sanitize"
	"github.com/dmitrymomot/textsafe/pkg/tokenizer"
)

// DefaultTokenLength is the per-token truncation limit of the basic
// tokenizer used by the package-level Sanitize.
const DefaultTokenLength = 50

// Sanitize filters text with the default rule set and the basic whitespace
// tokenizer. It is a convenience for one-off calls; construct a
// sanitize.Sanitizer with your model's tokenizer for anything serious,
// since token-explosion detection is only as good as the tokenizer it runs.
func Sanitize(text string, opts ...sanitize.Option) (string, error) {
	tk, err := tokenizer.NewBasic(DefaultTokenLength)
	if err != nil {
		return "", err
	}

	s, err := sanitize.New(tk, opts...)
	if err != nil {
		return "", err
	}

	return s.Sanitize(text)
}
