// Package tokenizer defines the tokenizer capability consumed by the
// sanitization pipeline and ships a basic whitespace implementation for
// testing and simple deployments.
//
// The sanitizer only needs one capability from a tokenizer: convert a string
// into an ordered sequence of tokens. It never depends on a concrete
// implementation, so production callers can plug in the tokenizer of the
// model they are protecting (byte-pair, unigram, vendor SDK) by satisfying
// the single-method Tokenizer interface or by wrapping a function with Func:
//
//	tk := tokenizer.Func(func(text string) ([]string, error) {
//	    return myBPE.Encode(text), nil
//	})
//
// Implementations must be deterministic for a given input to keep
// sanitization deterministic. They are not required to be injective or
// length-preserving.
//
// NewBasic returns a whitespace-splitting, length-truncating tokenizer. It is
// a convenience for demos and tests, not an approximation of any real model
// vocabulary.
package tokenizer
