package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Replacement is substituted for every ill-formed UTF-8 byte sequence by
// Repair. It is U+FFFD (REPLACEMENT CHARACTER), the Unicode-recommended
// substitute for unrepresentable data.
const Replacement = "\uFFFD"

// Repair replaces invalid UTF-8 byte sequences in s with U+FFFD.
// Valid strings are returned unchanged without allocation.
func Repair(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, Replacement)
}

// NFKC normalizes s to Unicode Normalization Form KC: compatibility
// decomposition followed by canonical composition. Already-normalized
// strings are returned unchanged without allocation.
func NFKC(s string) string {
	if norm.NFKC.IsNormalString(s) {
		return s
	}
	return norm.NFKC.String(s)
}

// Text prepares s for security filtering: UTF-8 repair followed by NFKC
// normalization. The result is total and deterministic for any input string.
func Text(s string) string {
	return NFKC(Repair(s))
}
