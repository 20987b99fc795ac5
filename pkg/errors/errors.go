// Package errors defines the sentinel errors shared across the indexing and
// query pipeline. Callers match them with errors.Is after any number of
// wrapping layers.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocumentID is returned by Insert for a negative or
	// already-present document id.
	ErrInvalidDocumentID = errors.New("invalid document id")

	// ErrInvalidWord is returned when a document word contains a control
	// character.
	ErrInvalidWord = errors.New("invalid word")

	// ErrEmptyQueryWord is returned for a query token that is empty after
	// stripping its leading minus.
	ErrEmptyQueryWord = errors.New("query word is empty")

	// ErrDoubleMinus is returned for a query token starting with "--".
	ErrDoubleMinus = errors.New("query word has a double minus")

	// ErrInvalidCharacter is returned for a query token containing a
	// control character.
	ErrInvalidCharacter = errors.New("query word contains an invalid character")

	// ErrUnknownDocument is returned by match operations for an absent id.
	// Removal of an absent id is a no-op, not an error.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrUnknownTerm is returned when the inverse document frequency of a
	// term with no postings is requested.
	ErrUnknownTerm = errors.New("unknown term")
)

// Wrapf annotates a sentinel with formatted context while keeping it
// matchable with errors.Is.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
