package tokenizer

import "errors"

// ErrInvalidMaxLength is returned by NewBasic when the per-token length
// limit is zero or negative.
var ErrInvalidMaxLength = errors.New("tokenizer: max length must be positive")
