// Package stopwords holds the set of words excluded from both indexing and
// querying.
package stopwords

import (
	"slices"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/tokenizer"
)

// Set is a deduplicated, order-irrelevant collection of stop words.
// A nil *Set behaves as an empty set.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the given words, dropping empty strings.
func New(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		if word == "" {
			continue
		}
		s.words[word] = struct{}{}
	}
	return s
}

// FromText builds a Set from space-separated text.
func FromText(text string) *Set {
	return New(slices.Collect(tokenizer.SplitWords(text)))
}

// Contains reports whether word is a stop word.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct stop words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
