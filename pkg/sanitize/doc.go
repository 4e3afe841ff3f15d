// Package sanitize filters arbitrary Unicode text before it reaches a
// language model or downstream text pipeline, neutralizing adversarial
// encodings: invisible and control characters used for prompt smuggling,
// emoji-based payload encoding, and clusters engineered to expand into
// disproportionately many tokens.
//
// # Pipeline
//
// Sanitization is a pure, single-pass transformation over user-perceived
// characters:
//
//  1. Normalize the input to NFKC (with UTF-8 repair) so equivalent
//     encodings collapse to one form the rules can match.
//  2. Segment the normalized text into extended grapheme clusters. Many
//     attacks are only expressible as multi-code-point sequences, so every
//     decision is made per cluster, never per code point.
//  3. Classify each cluster in fixed order: disallowed code points, emoji
//     (unless allowed), dangerous Unicode categories (strict mode), and
//     finally the per-cluster token budget under the injected tokenizer.
//  4. Reassemble in input order, substituting the configured replacement
//     string for every blocked cluster. Clusters are replaced wholesale or
//     kept verbatim; there are no partial edits.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/textsafe/pkg/sanitize"
//	    "github.com/dmitrymomot/textsafe/pkg/tokenizer"
//	)
//
//	tk, _ := tokenizer.NewBasic(50)
//	s, err := sanitize.New(tk,
//	    sanitize.WithMaxTokens(3),
//	    sanitize.WithReplacement(""),
//	)
//	if err != nil {
//	    // configuration error, nothing was processed
//	}
//
//	clean, err := s.Sanitize("Hello\u200B World 👋")
//	// clean == "Hello World "
//
// # Rule sets
//
// Defaults and caller additions follow merge-not-replace semantics: custom
// disallowed code points and dangerous categories are unioned into the
// built-in sets at construction time, and the merged RuleSet is frozen
// before the first cluster is classified. No state is carried across
// clusters or across calls.
//
// # Malformed input
//
// Ill-formed UTF-8 is repaired to U+FFFD during normalization, and U+FFFD is
// a member of the default disallowed set, so every cluster produced from
// malformed bytes is replaced. Malformed input is never passed through
// silently.
//
// # Failure semantics
//
// Configuration problems surface from New before any text is processed. An
// error from the injected tokenizer fails the whole call with no partial
// result: partially sanitized output could reintroduce exactly the attack
// class being defended against.
package sanitize
