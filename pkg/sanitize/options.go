package sanitize

import "log/slog"

// Option configures a Sanitizer.
type Option func(*options)

type options struct {
	maxTokens   int
	replacement string
	allowEmoji  bool
	strictMode  bool
	disallowed  []rune
	categories  []string
	workers     int
	logger      *slog.Logger
}

func defaultOptions() *options {
	return &options{
		maxTokens:  3,
		strictMode: true,
		workers:    1,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// WithMaxTokens sets the upper bound on tokens per grapheme cluster before
// the cluster is replaced. Default is 3.
func WithMaxTokens(n int) Option {
	return func(o *options) {
		o.maxTokens = n
	}
}

// WithReplacement sets the text substituted for every blocked cluster.
// Default is the empty string, which removes blocked clusters outright.
func WithReplacement(s string) Option {
	return func(o *options) {
		o.replacement = s
	}
}

// WithAllowEmoji controls whether emoji clusters pass through. Default is
// false: any cluster containing emoji is blocked.
func WithAllowEmoji(allowed bool) Option {
	return func(o *options) {
		o.allowEmoji = allowed
	}
}

// WithStrictMode controls dangerous-category blocking. Default is true.
func WithStrictMode(enabled bool) Option {
	return func(o *options) {
		o.strictMode = enabled
	}
}

// WithDisallowed unions additional code points into the default disallowed
// set. The defaults are never removed.
func WithDisallowed(runes ...rune) Option {
	return func(o *options) {
		o.disallowed = append(o.disallowed, runes...)
	}
}

// WithDangerousCategories unions additional Unicode general category codes
// (e.g. "So", "Sk") into the default dangerous set. The defaults are never
// removed. Unknown codes surface ErrUnknownCategory from New.
func WithDangerousCategories(codes ...string) Option {
	return func(o *options) {
		o.categories = append(o.categories, codes...)
	}
}

// WithWorkers sets the number of goroutines evaluating clusters in parallel.
// Cluster classification is independent, so parallel evaluation preserves
// semantics; output order always matches input order. Default is 1
// (sequential). Values above 1 are mainly useful when the injected tokenizer
// is expensive.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets a structured logger for debug-level block decisions.
// Default discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
