package sanitize

import (
	"errors"

	"github.com/dmitrymomot/textsafe/pkg/tokenizer"
)

// exceedsBudget reports whether a grapheme cluster tokenizes into more than
// maxTokens tokens. The budget is enforced per cluster, not per text.
// A tokenizer error fails the whole sanitize call.
func exceedsBudget(cluster string, tk tokenizer.Tokenizer, maxTokens int) (bool, error) {
	tokens, err := tk.Tokenize(cluster)
	if err != nil {
		return false, errors.Join(ErrTokenizerFailed, err)
	}
	return len(tokens) > maxTokens, nil
}
