package grapheme

import "github.com/rivo/uniseg"

// Clusters splits s into extended grapheme clusters in order.
// The clusters cover the whole string with no gaps or overlaps, so
// strings.Join(Clusters(s), "") == s for any input. Returns nil for the
// empty string.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}

	clusters := make([]string, 0, uniseg.GraphemeClusterCount(s))
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}

	return clusters
}

// Count returns the number of extended grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Segmenter iterates over the grapheme clusters of a string without
// materializing them as a slice. The zero value is not usable; construct
// with NewSegmenter. A Segmenter is single-use and not safe for concurrent
// access; create one per scan.
type Segmenter struct {
	rest    string
	cluster string
	state   int
}

// NewSegmenter returns a Segmenter positioned before the first cluster of s.
func NewSegmenter(s string) *Segmenter {
	return &Segmenter{rest: s, state: -1}
}

// Next advances to the next grapheme cluster. It returns false when the
// input is exhausted.
func (g *Segmenter) Next() bool {
	if len(g.rest) == 0 {
		return false
	}
	g.cluster, g.rest, _, g.state = uniseg.FirstGraphemeClusterInString(g.rest, g.state)
	return true
}

// Cluster returns the cluster the Segmenter currently points at. It is only
// valid after a call to Next that returned true.
func (g *Segmenter) Cluster() string {
	return g.cluster
}
