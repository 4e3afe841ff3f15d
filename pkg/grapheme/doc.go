// Package grapheme splits text into extended grapheme clusters, the
// user-perceived characters defined by Unicode Standard Annex #29.
//
// A grapheme cluster is the atomic unit a reader sees as one character, even
// when it is built from several code points: a base letter plus combining
// marks, an emoji joined from multiple pictographs with zero-width joiners, a
// flag assembled from two regional indicators, or a symbol followed by a
// variation selector. Security filtering must reason at this level because
// many adversarial encodings are only expressible as multi-code-point
// sequences that look harmless when inspected code point by code point.
//
// Segmentation is delegated to github.com/rivo/uniseg, which implements the
// UAX #29 boundary rules in full.
//
// # Usage
//
//	for _, cluster := range grapheme.Clusters("née 🇺🇸") {
//	    // each cluster is one user-perceived character
//	}
//
// For allocation-sensitive scans use the Segmenter iterator instead of
// materializing the full slice:
//
//	seg := grapheme.NewSegmenter(text)
//	for seg.Next() {
//	    process(seg.Cluster())
//	}
//
// The produced clusters partition the input exactly: concatenating them in
// order reproduces the original string byte for byte.
package grapheme
