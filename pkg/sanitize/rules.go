package sanitize

import (
	"fmt"
	"unicode"
)

// Reason identifies which check blocked a grapheme cluster. The reason only
// affects diagnostics; every blocked cluster is replaced the same way.
type Reason string

const (
	ReasonDisallowedChar    Reason = "disallowed_character"
	ReasonEmoji             Reason = "emoji"
	ReasonDangerousCategory Reason = "dangerous_category"
	ReasonTokenExplosion    Reason = "token_explosion"
)

// Decision is the per-cluster classification outcome.
type Decision struct {
	Blocked bool
	Reason  Reason
}

func block(r Reason) Decision {
	return Decision{Blocked: true, Reason: r}
}

// defaultDisallowed lists the code points blocked regardless of
// configuration: invisible joiners and spaces used for payload smuggling,
// variation selectors (emoji steganography vector), bidirectional controls
// that reorder displayed text, and U+FFFD produced by UTF-8 repair.
var defaultDisallowed = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200B, Hi: 0x200D, Stride: 1}, // ZWSP, ZWNJ, ZWJ
		{Lo: 0x200E, Hi: 0x200F, Stride: 1}, // LRM, RLM
		{Lo: 0x202A, Hi: 0x202E, Stride: 1}, // bidi embedding/override controls
		{Lo: 0x2060, Hi: 0x2060, Stride: 1}, // word joiner
		{Lo: 0x2066, Hi: 0x2069, Stride: 1}, // bidi isolate controls
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}, // variation selectors 1-16
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1}, // BOM / ZWNBSP
		{Lo: 0xFFFD, Hi: 0xFFFD, Stride: 1}, // replacement char from UTF-8 repair
	},
	R32: []unicode.Range32{
		{Lo: 0xE0000, Hi: 0xE007F, Stride: 1}, // Tags block
		{Lo: 0xE0100, Hi: 0xE01EF, Stride: 1}, // variation selectors supplement
	},
}

// defaultCategories are the Unicode general categories blocked in strict
// mode: control, format, surrogate, private use, and unassigned code points.
var defaultCategories = []string{"Cc", "Cf", "Cs", "Co", "Cn"}

// RuleSet is the frozen classification configuration shared by every cluster
// of one sanitize call. It is built once by New from built-in defaults merged
// with caller additions and never mutated afterwards, so concurrent reads
// are safe and a decision for one cluster can never depend on another.
type RuleSet struct {
	disallowed      map[rune]struct{}
	categories      []*unicode.RangeTable
	blockUnassigned bool
	allowEmoji      bool
	strictMode      bool
}

// NewRuleSet builds a frozen rule set from the defaults merged with the
// rule-related options (WithAllowEmoji, WithStrictMode, WithDisallowed,
// WithDangerousCategories). Options that configure the pipeline rather than
// the rules are ignored here.
func NewRuleSet(opts ...Option) (*RuleSet, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newRuleSet(o)
}

// newRuleSet merges the defaults with caller-supplied additions and resolves
// category codes to range tables. Additions extend the defaults, they never
// replace them.
func newRuleSet(cfg *options) (*RuleSet, error) {
	rs := &RuleSet{
		allowEmoji: cfg.allowEmoji,
		strictMode: cfg.strictMode,
	}

	if len(cfg.disallowed) > 0 {
		rs.disallowed = make(map[rune]struct{}, len(cfg.disallowed))
		for _, r := range cfg.disallowed {
			rs.disallowed[r] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(defaultCategories)+len(cfg.categories))
	for _, code := range append(append([]string{}, defaultCategories...), cfg.categories...) {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		// Cn has no range table; it is every code point the other tables omit.
		if code == "Cn" {
			rs.blockUnassigned = true
			continue
		}
		table, ok := unicode.Categories[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, code)
		}
		rs.categories = append(rs.categories, table)
	}

	return rs, nil
}

// Classify applies the rule checks to one grapheme cluster in fixed order,
// short-circuiting at the first match: disallowed code points, then emoji
// (unless allowed), then dangerous categories (strict mode only).
// Pure function of the cluster and the rule set.
func (rs *RuleSet) Classify(cluster string) Decision {
	for _, r := range cluster {
		if rs.isDisallowed(r) {
			return block(ReasonDisallowedChar)
		}
	}

	if !rs.allowEmoji && IsEmoji(cluster) {
		return block(ReasonEmoji)
	}

	if rs.strictMode {
		for _, r := range cluster {
			if rs.isDangerous(r) {
				return block(ReasonDangerousCategory)
			}
		}
	}

	return Decision{}
}

func (rs *RuleSet) isDisallowed(r rune) bool {
	if unicode.Is(defaultDisallowed, r) {
		return true
	}
	_, ok := rs.disallowed[r]
	return ok
}

func (rs *RuleSet) isDangerous(r rune) bool {
	for _, table := range rs.categories {
		if unicode.Is(table, r) {
			return true
		}
	}
	if rs.blockUnassigned && isUnassigned(r) {
		return true
	}
	return false
}

// isUnassigned reports whether r belongs to no Unicode general category,
// which is exactly the Cn (unassigned) class. Surrogates and private-use
// code points are members of unicode.C, so they are not flagged here.
func isUnassigned(r rune) bool {
	return !unicode.In(r,
		unicode.C, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z)
}
