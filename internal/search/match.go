package search

import (
	"context"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
	apperrors "github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/errors"
)

// MatchDocument returns the sorted, deduplicated plus terms of the query
// that appear in the document, together with the document's status. A minus
// term hit short-circuits to an empty term list. An absent id fails with
// ErrUnknownDocument. Both policies produce identical output.
func (s *Server) MatchDocument(ctx context.Context, rawQuery string, id int, policy index.Policy) ([]string, index.Status, error) {
	meta, ok := s.idx.Lookup(id)
	if !ok {
		return nil, 0, apperrors.Wrapf(apperrors.ErrUnknownDocument, "id %d", id)
	}
	if s.metrics != nil {
		s.metrics.MatchesTotal.WithLabelValues(policyName(policy)).Inc()
	}
	if policy == index.Parallel {
		return s.matchParallel(ctx, rawQuery, id, meta.Status)
	}
	return s.matchSequential(rawQuery, id, meta.Status)
}

func (s *Server) matchSequential(rawQuery string, id int, status index.Status) ([]string, index.Status, error) {
	q, err := s.parser.Parse(rawQuery)
	if err != nil {
		return nil, 0, err
	}
	for _, term := range q.Minus {
		if s.idx.HasPosting(term, id) {
			return []string{}, status, nil
		}
	}
	matched := make([]string, 0, len(q.Plus))
	for _, term := range q.Plus {
		if s.idx.HasPosting(term, id) {
			matched = append(matched, term)
		}
	}
	// Parse already deduplicated and sorted the plus terms.
	return matched, status, nil
}

// matchParallel uses the raw (non-deduplicated) parse and runs the minus
// check as an any-match reduction with an early-exit flag. Late workers may
// still complete their probe after a hit is seen; probes are read-only, so
// that race only costs time.
func (s *Server) matchParallel(ctx context.Context, rawQuery string, id int, status index.Status) ([]string, index.Status, error) {
	q, err := s.parser.ParseRaw(rawQuery)
	if err != nil {
		return nil, 0, err
	}

	var minusHit atomic.Bool
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for _, term := range q.Minus {
		g.Go(func() error {
			if minusHit.Load() {
				return nil
			}
			if s.idx.HasPosting(term, id) {
				minusHit.Store(true)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if minusHit.Load() {
		return []string{}, status, nil
	}

	// Parallel filter into a pre-sized slice keyed by input position, then
	// a sequential sort+dedupe on the calling goroutine.
	slots := make([]string, len(q.Plus))
	g, _ = errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, term := range q.Plus {
		g.Go(func() error {
			if s.idx.HasPosting(term, id) {
				slots[i] = term
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	matched := make([]string, 0, len(q.Plus))
	for _, term := range slots {
		if term != "" {
			matched = append(matched, term)
		}
	}
	slices.Sort(matched)
	return slices.Compact(matched), status, nil
}
