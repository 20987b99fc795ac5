// Package index implements the in-memory inverted index: mirrored
// forward (document→term→frequency) and reverse (term→document→frequency)
// posting maps plus per-document metadata, mutated only in lockstep by the
// Insert and Remove entry points.
package index

import (
	"context"
	"maps"
	"math"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/stopwords"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/tokenizer"
	apperrors "github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/errors"
)

// Policy selects the execution strategy for operations that ship both a
// sequential and a parallel variant. Both variants produce identical
// observable results.
type Policy int

const (
	Sequential Policy = iota
	Parallel
)

// Meta is the metadata recorded for a document at insertion. It never
// changes afterwards.
type Meta struct {
	Rating int
	Status Status
}

type document struct {
	rating int
	status Status
	text   string
}

// Index is the mirrored posting structure. Insert and Remove are mutually
// exclusive with every other operation; reads may run concurrently against
// a stable index.
type Index struct {
	mu          sync.RWMutex
	stops       *stopwords.Set
	termDocs    map[string]map[int]float64 // reverse: term → doc → tf
	docTerms    map[int]map[string]float64 // forward: doc → term → tf
	docs        map[int]document
	parallelism int
}

// New creates an empty Index that drops the given stop words during
// insertion.
func New(stops *stopwords.Set) *Index {
	return &Index{
		stops:       stops,
		termDocs:    make(map[string]map[int]float64),
		docTerms:    make(map[int]map[string]float64),
		docs:        make(map[int]document),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// SetParallelism bounds the worker count used by Parallel operations.
// Values below one are ignored.
func (ix *Index) SetParallelism(n int) {
	if n > 0 {
		ix.parallelism = n
	}
}

// Insert tokenizes text, drops stop words, and records the document's
// postings in both maps together with its metadata. The whole token stream
// is validated before either map is touched, so a failed insert leaves the
// index unmodified.
func (ix *Index) Insert(id int, text string, status Status, ratings []int) error {
	if id < 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidDocumentID, "%d is negative", id)
	}
	words, err := ix.splitNoStop(text)
	if err != nil {
		return err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, exists := ix.docs[id]; exists {
		return apperrors.Wrapf(apperrors.ErrInvalidDocumentID, "%d already present", id)
	}
	ix.docs[id] = document{rating: averageRating(ratings), status: status, text: text}

	forward := make(map[string]float64, len(words))
	if len(words) > 0 {
		inv := 1.0 / float64(len(words))
		for _, word := range words {
			forward[word] += inv
			reverse, ok := ix.termDocs[word]
			if !ok {
				reverse = make(map[int]float64)
				ix.termDocs[word] = reverse
			}
			reverse[id] += inv
		}
	}
	ix.docTerms[id] = forward
	return nil
}

// Remove deletes the document's metadata, its entry in every reverse
// posting list it participates in, and its forward posting map. Removing an
// unknown id is a no-op.
func (ix *Index) Remove(ctx context.Context, id int, policy Policy) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	forward, ok := ix.docTerms[id]
	if !ok {
		return nil
	}
	delete(ix.docs, id)
	if policy == Parallel {
		if err := ix.eraseParallel(ctx, id, forward); err != nil {
			return err
		}
	} else {
		for term := range forward {
			delete(ix.termDocs[term], id)
			if len(ix.termDocs[term]) == 0 {
				delete(ix.termDocs, term)
			}
		}
	}
	delete(ix.docTerms, id)
	return nil
}

// eraseParallel fans workers over the document's terms. Each worker mutates
// a distinct inner posting map; the top-level maps are only touched on the
// calling goroutine.
func (ix *Index) eraseParallel(ctx context.Context, id int, forward map[string]float64) error {
	terms := slices.Collect(maps.Keys(forward))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(ix.parallelism)
	for _, term := range terms {
		g.Go(func() error {
			delete(ix.termDocs[term], id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, term := range terms {
		if len(ix.termDocs[term]) == 0 {
			delete(ix.termDocs, term)
		}
	}
	return nil
}

// TermFrequencies returns an owned copy of the document's term→frequency
// map. An unknown id yields an empty map, not an error.
func (ix *Index) TermFrequencies(id int) map[string]float64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	forward, ok := ix.docTerms[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(forward))
	maps.Copy(out, forward)
	return out
}

// DocumentCount returns the number of indexed documents.
func (ix *Index) DocumentCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docs)
}

// DocumentIDs returns every indexed document id in ascending order.
func (ix *Index) DocumentIDs() []int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	ids := slices.Collect(maps.Keys(ix.docs))
	slices.Sort(ids)
	return ids
}

// InverseDocumentFrequency returns ln(documentCount / documentsContaining).
// A term with no postings fails with ErrUnknownTerm; callers are expected
// to confirm presence first.
func (ix *Index) InverseDocumentFrequency(term string) (float64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	docs := ix.termDocs[term]
	if len(docs) == 0 {
		return 0, apperrors.Wrapf(apperrors.ErrUnknownTerm, "%q has no postings", term)
	}
	return math.Log(float64(len(ix.docs)) / float64(len(docs))), nil
}

// Postings returns an owned copy of the term's document→frequency map, or
// nil when the term has no postings.
func (ix *Index) Postings(term string) map[int]float64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	reverse, ok := ix.termDocs[term]
	if !ok {
		return nil
	}
	out := make(map[int]float64, len(reverse))
	maps.Copy(out, reverse)
	return out
}

// HasPosting reports whether the term's postings include the document.
func (ix *Index) HasPosting(term string, id int) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	_, ok := ix.termDocs[term][id]
	return ok
}

// Lookup returns the document's metadata and whether the id is indexed.
func (ix *Index) Lookup(id int) (Meta, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	doc, ok := ix.docs[id]
	if !ok {
		return Meta{}, false
	}
	return Meta{Rating: doc.rating, Status: doc.status}, true
}

// splitNoStop tokenizes text, rejecting words with control characters and
// dropping stop words.
func (ix *Index) splitNoStop(text string) ([]string, error) {
	var words []string
	for word := range tokenizer.SplitWords(text) {
		if !tokenizer.ValidWord(word) {
			return nil, apperrors.Wrapf(apperrors.ErrInvalidWord, "%q", word)
		}
		if ix.stops.Contains(word) {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}

// averageRating is the truncated mean of ratings, or 0 for an empty list.
func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}
