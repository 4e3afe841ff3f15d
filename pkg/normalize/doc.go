// Package normalize provides Unicode canonicalization for text that is about
// to be inspected by security filters.
//
// Many Unicode attacks present a dangerous character through an alternate but
// compatibility-equivalent encoding (fullwidth forms, ligatures, composed vs
// decomposed accents). Normalizing to NFKC first collapses every equivalent
// representation to a single canonical form, so downstream rule sets only have
// to match one spelling of each character.
//
// # Usage
//
//	import "github.com/dmitrymomot/textsafe/pkg/normalize"
//
//	canonical := normalize.Text(userInput)
//
// Text repairs ill-formed UTF-8 before normalizing: every invalid byte
// sequence is replaced with U+FFFD (REPLACEMENT CHARACTER). The replacement
// character is deliberately left in the output so that callers which treat
// U+FFFD as disallowed can reject the affected clusters instead of silently
// accepting mangled input.
//
// All functions are pure and safe for concurrent use.
package normalize
