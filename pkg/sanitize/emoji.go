package sanitize

import "unicode"

// emojiTable covers the pictographic blocks treated as emoji. Curated from
// the Unicode emoji blocks rather than generated from the emoji property
// data: symbols that only gain emoji presentation through a variation
// selector are already caught by the disallowed-character check, so this
// table only needs the inherently pictographic ranges.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x203C, Hi: 0x203C, Stride: 1}, // double exclamation mark
		{Lo: 0x2049, Hi: 0x2049, Stride: 1}, // exclamation question mark
		{Lo: 0x20E3, Hi: 0x20E3, Stride: 1}, // combining enclosing keycap
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // miscellaneous symbols
		{Lo: 0x2702, Hi: 0x27B0, Stride: 1}, // dingbats
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1}, // arrows with emoji presentation
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1}, // black/white large squares
		{Lo: 0x2B50, Hi: 0x2B50, Stride: 1}, // white medium star
		{Lo: 0x2B55, Hi: 0x2B55, Stride: 1}, // heavy large circle
	},
	R32: []unicode.Range32{
		{Lo: 0x1F100, Hi: 0x1F1FF, Stride: 1}, // enclosed alphanumerics, regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // misc symbols and pictographs, skin tones
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map symbols
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols and pictographs
		{Lo: 0x1FA00, Hi: 0x1FAFF, Stride: 1}, // symbols and pictographs extended-A
	},
}

// IsEmoji reports whether a grapheme cluster is emoji-classified: any of its
// code points falls in the pictographic blocks. Multi-code-point sequences
// (flags from regional indicator pairs, keycaps, skin tone modifiers) are
// covered because their distinguishing code points are themselves in the
// table; ZWJ and variation-selector sequences additionally contain
// disallowed code points and are blocked by the earlier check either way.
func IsEmoji(cluster string) bool {
	for _, r := range cluster {
		if unicode.Is(emojiTable, r) {
			return true
		}
	}
	return false
}
