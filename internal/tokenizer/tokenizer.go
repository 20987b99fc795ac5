// Package tokenizer splits raw document and query text into words.
// Splitting is strictly on single spaces: no trimming of other whitespace,
// no case folding, no stemming.
package tokenizer

import (
	"iter"
	"strings"
)

// SplitWords returns a lazy, restartable sequence over the non-empty
// segments of text delimited by single spaces. Empty input yields an empty
// sequence.
func SplitWords(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range strings.SplitSeq(text, " ") {
			if word == "" {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// ValidWord reports whether word is free of control characters (bytes below
// 0x20).
func ValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 0x20 {
			return false
		}
	}
	return true
}
