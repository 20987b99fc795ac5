// Package cache memoizes ranked query results in Redis. Concurrent misses
// for the same key are collapsed through singleflight so the index is only
// queried once.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/query"
	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/ranking"
	pkgredis "github.com/Adithya-Monish-Kumar-K/Text-Search-Server/pkg/redis"
)

const keyPrefix = "topdocs:"

// QueryCache stores FindTopDocuments results keyed by the normalized parsed
// query and the status filter.
type QueryCache struct {
	client *pkgredis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a QueryCache over the given Redis client.
func New(client *pkgredis.Client, ttl time.Duration) *QueryCache {
	return &QueryCache{
		client: client,
		ttl:    ttl,
		logger: slog.Default().With("component", "query-cache"),
	}
}

// GetOrCompute returns the cached result for the query, or runs computeFn
// once (across concurrent callers) and caches its result. The second return
// value reports whether the result came from the cache.
func (c *QueryCache) GetOrCompute(
	ctx context.Context,
	q query.Query,
	status index.Status,
	computeFn func() ([]ranking.Document, error),
) ([]ranking.Document, bool, error) {
	key := buildKey(q, status)
	if docs, ok := c.get(ctx, key); ok {
		return docs, true, nil
	}
	val, err, _ := c.group.Do(key, func() (any, error) {
		if docs, ok := c.get(ctx, key); ok {
			return docs, nil
		}
		docs, err := computeFn()
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, docs)
		return docs, nil
	})
	if err != nil {
		return nil, false, err
	}
	return val.([]ranking.Document), false, nil
}

// Invalidate drops every cached result. Called after any index mutation.
func (c *QueryCache) Invalidate(ctx context.Context) error {
	deleted, err := c.client.FlushByPattern(ctx, keyPrefix+"*")
	if err != nil {
		return fmt.Errorf("invalidating query cache: %w", err)
	}
	c.logger.Debug("query cache invalidated", "keys_deleted", deleted)
	return nil
}

// Stats returns the hit and miss counts observed so far.
func (c *QueryCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *QueryCache) get(ctx context.Context, key string) ([]ranking.Document, bool) {
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		c.misses.Add(1)
		return nil, false
	}
	var docs []ranking.Document
	if err := json.Unmarshal([]byte(data), &docs); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return docs, true
}

func (c *QueryCache) set(ctx context.Context, key string, docs []ranking.Document) {
	data, err := json.Marshal(docs)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

// buildKey hashes the parsed query. Parse already sorts and deduplicates
// both term sets, so equivalent raw queries share a key.
func buildKey(q query.Query, status index.Status) string {
	raw := fmt.Sprintf("%s|-%s|status=%d",
		strings.Join(q.Plus, ","), strings.Join(q.Minus, ","), status)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%s%x", keyPrefix, sum[:16])
}
