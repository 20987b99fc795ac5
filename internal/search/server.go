// Package search exposes the search server facade: document ingestion,
// ranked top-K queries, document matching, removal with duplicate cleanup,
// and batch query processing.
package search

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/dedup"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/query"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/ranking"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/search/cache"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/stopwords"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/metrics"
)

// Server ties the tokenizer, index, parser, and ranker together behind the
// public search operations.
type Server struct {
	idx         *index.Index
	parser      *query.Parser
	ranker      *ranking.Ranker
	cache       *cache.QueryCache
	metrics     *metrics.Metrics
	logger      *slog.Logger
	parallelism int
}

// New creates a Server with the given stop words and search settings.
func New(stopWords []string, cfg config.SearchConfig) *Server {
	stops := stopwords.New(stopWords)
	idx := index.New(stops)
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	idx.SetParallelism(parallelism)
	return &Server{
		idx:         idx,
		parser:      query.NewParser(stops),
		ranker:      ranking.New(idx, cfg.MaxResults, cfg.RelevanceTolerance),
		logger:      slog.Default().With("component", "search-server"),
		parallelism: parallelism,
	}
}

// AttachCache enables the Redis query cache for status-filtered searches.
func (s *Server) AttachCache(c *cache.QueryCache) {
	s.cache = c
}

// AttachMetrics enables Prometheus instrumentation.
func (s *Server) AttachMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// AddDocument indexes one document. A negative or duplicate id fails with
// ErrInvalidDocumentID; a word with a control character fails with
// ErrInvalidWord. On failure the index is unchanged.
func (s *Server) AddDocument(id int, text string, status index.Status, ratings []int) error {
	if err := s.idx.Insert(id, text, status, ratings); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.DocsIndexedTotal.Inc()
	}
	s.invalidateCache(context.Background())
	s.logger.Debug("document indexed", "doc_id", id, "status", status)
	return nil
}

// FindTopDocuments runs a ranked search over active documents.
func (s *Server) FindTopDocuments(ctx context.Context, rawQuery string) ([]ranking.Document, error) {
	return s.FindTopDocumentsWithStatus(ctx, rawQuery, index.StatusActive)
}

// FindTopDocumentsWithStatus runs a ranked search over documents with the
// given status. Results are served from the query cache when one is
// attached.
func (s *Server) FindTopDocumentsWithStatus(ctx context.Context, rawQuery string, status index.Status) ([]ranking.Document, error) {
	q, err := s.parser.Parse(rawQuery)
	if err != nil {
		s.countQuery("error")
		return nil, err
	}
	pred := ranking.StatusIs(status)

	start := time.Now()
	if s.cache != nil {
		docs, hit, err := s.cache.GetOrCompute(ctx, q, status, func() ([]ranking.Document, error) {
			return s.ranker.FindTop(q, pred), nil
		})
		if err != nil {
			s.countQuery("error")
			return nil, err
		}
		s.observeQuery(docs, start, cacheStatus(hit))
		return docs, nil
	}

	docs := s.ranker.FindTop(q, pred)
	s.observeQuery(docs, start, "none")
	s.logger.Debug("query executed",
		"query", rawQuery,
		"status", status,
		"results", len(docs),
	)
	return docs, nil
}

// FindTopDocumentsFunc runs a ranked search with an arbitrary document
// predicate. Predicate searches bypass the query cache.
func (s *Server) FindTopDocumentsFunc(ctx context.Context, rawQuery string, pred ranking.Predicate) ([]ranking.Document, error) {
	q, err := s.parser.Parse(rawQuery)
	if err != nil {
		s.countQuery("error")
		return nil, err
	}
	start := time.Now()
	docs := s.ranker.FindTop(q, pred)
	s.observeQuery(docs, start, "none")
	return docs, nil
}

// RemoveDocument deletes a document under the chosen execution policy.
// Removing an unknown id is a no-op.
func (s *Server) RemoveDocument(ctx context.Context, id int, policy index.Policy) error {
	_, existed := s.idx.Lookup(id)
	if err := s.idx.Remove(ctx, id, policy); err != nil {
		return err
	}
	if existed {
		if s.metrics != nil {
			s.metrics.DocsRemovedTotal.Inc()
		}
		s.invalidateCache(ctx)
		s.logger.Debug("document removed", "doc_id", id, "policy", policyName(policy))
	}
	return nil
}

// RemoveDuplicates removes every document whose indexed term set duplicates
// a lower id's, returning the removed ids in ascending order.
func (s *Server) RemoveDuplicates(ctx context.Context) ([]int, error) {
	removed, err := dedup.Remove(ctx, s.idx)
	if err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		if s.metrics != nil {
			s.metrics.DuplicatesRemovedTotal.Add(float64(len(removed)))
		}
		s.invalidateCache(ctx)
	}
	return removed, nil
}

// DocumentCount returns the number of indexed documents.
func (s *Server) DocumentCount() int {
	return s.idx.DocumentCount()
}

// DocumentIDs returns the indexed ids in ascending order.
func (s *Server) DocumentIDs() []int {
	return s.idx.DocumentIDs()
}

// TermFrequencies returns the document's term→frequency map; empty for an
// unknown id.
func (s *Server) TermFrequencies(id int) map[string]float64 {
	return s.idx.TermFrequencies(id)
}

func (s *Server) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Error("query cache invalidation failed", "error", err)
	}
}

func (s *Server) countQuery(outcome string) {
	if s.metrics != nil {
		s.metrics.QueriesTotal.WithLabelValues(outcome).Inc()
	}
}

func (s *Server) observeQuery(docs []ranking.Document, start time.Time, cacheStatus string) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if len(docs) == 0 {
		outcome = "zero_result"
	}
	s.metrics.QueriesTotal.WithLabelValues(outcome).Inc()
	s.metrics.QueryDuration.WithLabelValues(cacheStatus).Observe(time.Since(start).Seconds())
	switch cacheStatus {
	case "hit":
		s.metrics.CacheHitsTotal.Inc()
	case "miss":
		s.metrics.CacheMissesTotal.Inc()
	}
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func policyName(policy index.Policy) string {
	if policy == index.Parallel {
		return "parallel"
	}
	return "sequential"
}
