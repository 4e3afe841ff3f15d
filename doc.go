// Package textsafe sanitizes arbitrary Unicode text before it reaches a
// language model or other text pipeline.
//
// The package neutralizes three classes of adversarial encodings:
//
//   - invisible and control characters used for prompt smuggling (zero-width
//     spaces and joiners, bidirectional overrides, variation selectors)
//   - emoji-based payload encoding
//   - "token explosion" inputs engineered to expand into disproportionately
//     many tokens under the target model's tokenizer
//
// Filtering operates on extended grapheme clusters, the characters a user
// actually perceives, because many attacks are only expressible as
// multi-code-point sequences that look harmless code point by code point.
//
// The root package offers a one-call convenience wired to a basic
// whitespace tokenizer:
//
//	clean, err := textsafe.Sanitize(userInput)
//
// Production callers should use the subpackages directly and inject the
// tokenizer of the model they are protecting:
//
//   - pkg/sanitize  - the filtering pipeline, rule sets and configuration
//   - pkg/tokenizer - the tokenizer capability and a basic implementation
//   - pkg/grapheme  - extended grapheme cluster segmentation
//   - pkg/normalize - NFKC normalization with UTF-8 repair
package textsafe
