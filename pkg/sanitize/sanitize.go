package sanitize

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/textsafe/pkg/grapheme"
	"github.com/dmitrymomot/textsafe/pkg/normalize"
	"github.com/dmitrymomot/textsafe/pkg/tokenizer"
)

// Report summarizes the decisions of one sanitize call: how many grapheme
// clusters the normalized input contained, how many were replaced, and the
// replacement count per reason. Reasons is nil when nothing was replaced.
type Report struct {
	Clusters int
	Replaced int
	Reasons  map[Reason]int
}

// Sanitizer filters Unicode text before it reaches a language model or other
// text pipeline. It neutralizes invisible and control characters used for
// prompt smuggling, emoji payload encoding, and clusters engineered to
// explode into disproportionately many tokens.
//
// A Sanitizer is immutable after construction and safe for concurrent use,
// provided the injected tokenizer is too.
type Sanitizer struct {
	rules       *RuleSet
	tk          tokenizer.Tokenizer
	maxTokens   int
	replacement string
	workers     int
	logger      *slog.Logger
}

// New constructs a Sanitizer around the injected tokenizer. All
// configuration is validated here; a sanitize call never fails on options.
func New(tk tokenizer.Tokenizer, opts ...Option) (*Sanitizer, error) {
	if tk == nil {
		return nil, ErrNilTokenizer
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.maxTokens <= 0 {
		return nil, ErrInvalidMaxTokens
	}
	if o.workers <= 0 {
		return nil, ErrInvalidWorkers
	}

	rules, err := newRuleSet(o)
	if err != nil {
		return nil, err
	}

	return &Sanitizer{
		rules:       rules,
		tk:          tk,
		maxTokens:   o.maxTokens,
		replacement: o.replacement,
		workers:     o.workers,
		logger:      o.logger,
	}, nil
}

// Sanitize normalizes text to NFKC, segments it into grapheme clusters,
// classifies each cluster against the rule set and the token budget, and
// reassembles the survivors in input order with blocked clusters replaced by
// the configured replacement string. Clusters are never partially edited.
//
// A tokenizer failure aborts the whole call; no partial result is returned.
func (s *Sanitizer) Sanitize(text string) (string, error) {
	out, _, err := s.run(text)
	return out, err
}

// SanitizeReport is Sanitize with per-call diagnostics.
func (s *Sanitizer) SanitizeReport(text string) (string, Report, error) {
	return s.run(text)
}

// SanitizeBatch sanitizes independent texts concurrently, one goroutine per
// text, and returns the results in input order. Texts share the frozen rule
// set, so there is no ordering dependency between them. The first failure
// cancels the remaining work and fails the batch.
func (s *Sanitizer) SanitizeBatch(ctx context.Context, texts []string) ([]string, error) {
	results := make([]string, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			out, _, err := s.run(text)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *Sanitizer) run(text string) (string, Report, error) {
	normalized := normalize.Text(text)

	if s.workers > 1 {
		return s.runParallel(normalized)
	}

	var (
		b      strings.Builder
		report Report
	)
	b.Grow(len(normalized))

	seg := grapheme.NewSegmenter(normalized)
	for seg.Next() {
		cluster := seg.Cluster()
		report.Clusters++

		decision, err := s.decide(cluster)
		if err != nil {
			return "", Report{}, err
		}
		s.emit(&b, cluster, decision, &report)
	}

	return b.String(), report, nil
}

// runParallel evaluates clusters concurrently. Classification has no
// cross-cluster dependency, so only the final reassembly needs to restore
// input order.
func (s *Sanitizer) runParallel(normalized string) (string, Report, error) {
	clusters := grapheme.Clusters(normalized)
	decisions := make([]Decision, len(clusters))

	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, cluster := range clusters {
		g.Go(func() error {
			decision, err := s.decide(cluster)
			if err != nil {
				return err
			}
			decisions[i] = decision
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", Report{}, err
	}

	var b strings.Builder
	b.Grow(len(normalized))
	report := Report{Clusters: len(clusters)}
	for i, cluster := range clusters {
		s.emit(&b, cluster, decisions[i], &report)
	}

	return b.String(), report, nil
}

// decide runs the two per-cluster decision points in order: rule
// classification first, then the token budget for clusters the rules allow.
func (s *Sanitizer) decide(cluster string) (Decision, error) {
	decision := s.rules.Classify(cluster)
	if decision.Blocked {
		return decision, nil
	}

	exceeds, err := exceedsBudget(cluster, s.tk, s.maxTokens)
	if err != nil {
		return Decision{}, err
	}
	if exceeds {
		return block(ReasonTokenExplosion), nil
	}

	return Decision{}, nil
}

func (s *Sanitizer) emit(b *strings.Builder, cluster string, decision Decision, report *Report) {
	if !decision.Blocked {
		b.WriteString(cluster)
		return
	}

	report.Replaced++
	if report.Reasons == nil {
		report.Reasons = make(map[Reason]int)
	}
	report.Reasons[decision.Reason]++

	s.logger.Debug("cluster blocked",
		slog.String("reason", string(decision.Reason)),
		slog.String("cluster", strconv.QuoteToASCII(cluster)),
	)

	b.WriteString(s.replacement)
}
