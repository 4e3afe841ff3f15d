package sanitize_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/textsafe/pkg/sanitize"
)

var benchInputs = map[string]string{
	"ascii":     "The quick brown fox jumps over the lazy dog.",
	"invisible": "pay\u200Bload\u200B with\u202E hidden\uFEFF marks",
	"emoji":     "launch \U0001F680 day \U0001F389 party \U0001F973 time",
	"mixed":     "café 日本語 \U0001F1FA\U0001F1F8 résumé",
	"long":      strings.Repeat("lorem ipsum dolor sit amet ", 40),
}

func BenchmarkSanitize(b *testing.B) {
	s, err := sanitize.New(oneTokenPerCluster)
	if err != nil {
		b.Fatal(err)
	}
	for name, input := range benchInputs {
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_, _ = s.Sanitize(input)
			}
		})
	}
}

func BenchmarkSanitizeParallel(b *testing.B) {
	s, err := sanitize.New(oneTokenPerCluster, sanitize.WithWorkers(4))
	if err != nil {
		b.Fatal(err)
	}
	input := benchInputs["long"]
	b.ResetTimer()
	for b.Loop() {
		_, _ = s.Sanitize(input)
	}
}
