package sanitize

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/textsafe/pkg/tokenizer"
)

// Config mirrors the Sanitizer options as environment variables so services
// can tune filtering without a redeploy. Field values are passed through to
// New as-is, so populate it via LoadConfig (the env defaults match New's
// defaults) rather than constructing it partially by hand.
type Config struct {
	MaxTokens           int      `env:"SANITIZE_MAX_TOKENS" envDefault:"3"`             // upper bound on tokens per grapheme cluster
	Replacement         string   `env:"SANITIZE_REPLACEMENT" envDefault:""`             // text substituted for blocked clusters
	AllowEmoji          bool     `env:"SANITIZE_ALLOW_EMOJI" envDefault:"false"`        // pass emoji clusters through
	StrictMode          bool     `env:"SANITIZE_STRICT_MODE" envDefault:"true"`         // enable dangerous-category blocking
	Disallowed          string   `env:"SANITIZE_DISALLOWED" envDefault:""`              // extra disallowed code points, given literally
	DangerousCategories []string `env:"SANITIZE_DANGEROUS_CATEGORIES" envSeparator:","` // extra category codes, comma separated
	Workers             int      `env:"SANITIZE_WORKERS" envDefault:"1"`                // parallel cluster evaluation
}

var defaultEnvLoaded sync.Once

// LoadConfig reads SANITIZE_* environment variables into a Config, loading
// the default .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// NewFromConfig constructs a Sanitizer from a Config plus any overriding
// options. Options are applied after the config, so they win on conflict.
func NewFromConfig(tk tokenizer.Tokenizer, cfg Config, opts ...Option) (*Sanitizer, error) {
	fromCfg := []Option{
		WithMaxTokens(cfg.MaxTokens),
		WithReplacement(cfg.Replacement),
		WithAllowEmoji(cfg.AllowEmoji),
		WithStrictMode(cfg.StrictMode),
		WithWorkers(cfg.Workers),
	}
	if cfg.Disallowed != "" {
		fromCfg = append(fromCfg, WithDisallowed([]rune(cfg.Disallowed)...))
	}
	if len(cfg.DangerousCategories) > 0 {
		fromCfg = append(fromCfg, WithDangerousCategories(cfg.DangerousCategories...))
	}

	return New(tk, append(fromCfg, opts...)...)
}
