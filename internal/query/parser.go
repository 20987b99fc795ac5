// Package query turns raw query text into a structured plus/minus query.
package query

import (
	"slices"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/stopwords"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/tokenizer"
	apperrors "github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/errors"
)

// Query holds the parsed form of a raw query. Plus terms must appear in a
// matching document, Minus terms must not. Stop words appear in neither.
type Query struct {
	Plus  []string
	Minus []string
}

// Parser validates and classifies query tokens against a stop-word set.
type Parser struct {
	stops *stopwords.Set
}

// NewParser returns a Parser using the given stop-word set.
func NewParser(stops *stopwords.Set) *Parser {
	return &Parser{stops: stops}
}

// Parse builds a Query with both term sets deduplicated and sorted.
// A malformed token aborts the parse; no partial query is returned.
func (p *Parser) Parse(text string) (Query, error) {
	return p.parse(text, true)
}

// ParseRaw builds a Query without the dedupe/sort pass. Intended for callers
// that deduplicate downstream, such as the parallel matcher.
func (p *Parser) ParseRaw(text string) (Query, error) {
	return p.parse(text, false)
}

func (p *Parser) parse(text string, dedupe bool) (Query, error) {
	var q Query
	for word := range tokenizer.SplitWords(text) {
		term, minus, err := parseWord(word)
		if err != nil {
			return Query{}, err
		}
		if p.stops.Contains(term) {
			continue
		}
		if minus {
			q.Minus = append(q.Minus, term)
		} else {
			q.Plus = append(q.Plus, term)
		}
	}
	if dedupe {
		for _, terms := range []*[]string{&q.Plus, &q.Minus} {
			slices.Sort(*terms)
			*terms = slices.Compact(*terms)
		}
	}
	return q, nil
}

func parseWord(word string) (term string, minus bool, err error) {
	stripped := word
	if strings.HasPrefix(stripped, "-") {
		minus = true
		stripped = stripped[1:]
	}
	switch {
	case stripped == "":
		return "", false, apperrors.Wrapf(apperrors.ErrEmptyQueryWord, "token %q", word)
	case strings.HasPrefix(stripped, "-"):
		return "", false, apperrors.Wrapf(apperrors.ErrDoubleMinus, "token %q", word)
	case !tokenizer.ValidWord(stripped):
		return "", false, apperrors.Wrapf(apperrors.ErrInvalidCharacter, "token %q", word)
	}
	return stripped, minus, nil
}
