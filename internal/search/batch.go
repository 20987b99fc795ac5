package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/ranking"
)

// ProcessQueries fans a batch of independent queries across a bounded pool
// of workers, each running one query's full top-K search. Every query
// writes into its own output slot, so result order matches input order
// regardless of completion order. The first worker failure aborts the batch
// and is reported exactly once.
func (s *Server) ProcessQueries(ctx context.Context, queries []string) ([][]ranking.Document, error) {
	results := make([][]ranking.Document, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, raw := range queries {
		g.Go(func() error {
			docs, err := s.FindTopDocuments(ctx, raw)
			if err != nil {
				return fmt.Errorf("query %q: %w", raw, err)
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.BatchSize.Observe(float64(len(queries)))
	}
	s.logger.Debug("batch processed", "queries", len(queries))
	return results, nil
}

// ProcessQueriesJoined concatenates the per-query result lists in input
// order. Results are not re-ranked across queries.
func (s *Server) ProcessQueriesJoined(ctx context.Context, queries []string) ([]ranking.Document, error) {
	lists, err := s.ProcessQueries(ctx, queries)
	if err != nil {
		return nil, err
	}
	var joined []ranking.Document
	for _, docs := range lists {
		joined = append(joined, docs...)
	}
	return joined, nil
}
