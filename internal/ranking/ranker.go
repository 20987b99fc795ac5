// Package ranking scores parsed queries against the inverted index with
// TF-IDF relevance and returns the top results.
package ranking

import (
	"math"
	"sort"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/query"
)

const (
	// DefaultMaxResults is the result-count cap applied when the
	// configuration leaves it unset.
	DefaultMaxResults = 5

	// DefaultTolerance is the relevance difference below which two
	// documents are considered tied and ordered by rating instead.
	DefaultTolerance = 1e-6
)

// Document is one ranked search result.
type Document struct {
	ID        int     `json:"id"`
	Relevance float64 `json:"relevance"`
	Rating    int     `json:"rating"`
}

// Predicate filters candidate documents by identity and metadata.
type Predicate func(id int, status index.Status, rating int) bool

// StatusIs returns a Predicate selecting documents with the given status.
func StatusIs(status index.Status) Predicate {
	return func(_ int, s index.Status, _ int) bool {
		return s == status
	}
}

// Ranker evaluates parsed queries against a single index.
type Ranker struct {
	idx        *index.Index
	maxResults int
	tolerance  float64
}

// New creates a Ranker. Non-positive maxResults or tolerance fall back to
// the documented defaults.
func New(idx *index.Index, maxResults int, tolerance float64) *Ranker {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Ranker{idx: idx, maxResults: maxResults, tolerance: tolerance}
}

// FindTop accumulates Σ tf×idf over the query's plus terms for every
// document passing pred, drops documents containing any minus term, sorts
// by descending relevance with near-ties broken by descending rating, and
// truncates to the configured maximum.
func (r *Ranker) FindTop(q query.Query, pred Predicate) []Document {
	relevance := make(map[int]float64)
	for _, term := range q.Plus {
		postings := r.idx.Postings(term)
		if len(postings) == 0 {
			continue
		}
		idf, err := r.idx.InverseDocumentFrequency(term)
		if err != nil {
			continue
		}
		for id, tf := range postings {
			meta, ok := r.idx.Lookup(id)
			if !ok || !pred(id, meta.Status, meta.Rating) {
				continue
			}
			relevance[id] += tf * idf
		}
	}
	for _, term := range q.Minus {
		for id := range r.idx.Postings(term) {
			delete(relevance, id)
		}
	}

	results := make([]Document, 0, len(relevance))
	for id, rel := range relevance {
		meta, ok := r.idx.Lookup(id)
		if !ok {
			continue
		}
		results = append(results, Document{ID: id, Relevance: rel, Rating: meta.Rating})
	}
	sort.Slice(results, func(i, j int) bool {
		if math.Abs(results[i].Relevance-results[j].Relevance) < r.tolerance {
			return results[i].Rating > results[j].Rating
		}
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > r.maxResults {
		results = results[:r.maxResults]
	}
	return results
}

// MaxResults returns the configured result cap.
func (r *Ranker) MaxResults() int {
	return r.maxResults
}
