package sanitize

import "errors"

// Package-specific errors. Configuration errors are surfaced by New and
// LoadConfig before any text is processed; ErrTokenizerFailed aborts a
// sanitize call without producing partial output.
var (
	// ErrNilTokenizer is returned when a Sanitizer is constructed without a tokenizer.
	ErrNilTokenizer = errors.New("sanitize: tokenizer is nil")

	// ErrInvalidMaxTokens is returned for a zero or negative per-cluster token budget.
	ErrInvalidMaxTokens = errors.New("sanitize: max tokens must be positive")

	// ErrInvalidWorkers is returned for a zero or negative worker count.
	ErrInvalidWorkers = errors.New("sanitize: workers must be positive")

	// ErrUnknownCategory is returned when a dangerous-category code does not
	// name a Unicode general category.
	ErrUnknownCategory = errors.New("sanitize: unknown unicode category")

	// ErrTokenizerFailed wraps errors returned by the injected tokenizer.
	// The whole sanitize call fails; no partially filtered text is returned.
	ErrTokenizerFailed = errors.New("sanitize: tokenizer failed")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into a Config.
	ErrParsingConfig = errors.New("sanitize: failed to parse environment config")
)
