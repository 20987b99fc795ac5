// Package dedup finds documents whose indexed term sets are identical and
// removes all but the lowest-id member of each group.
package dedup

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/index"
)

// Remove scans document ids in ascending order, marking every id whose
// distinct term set was already seen from a lower id, then removes the
// marked ids. The lowest id of each group always survives. Removed ids are
// returned in ascending order.
func Remove(ctx context.Context, idx *index.Index) ([]int, error) {
	seen := make(map[string]struct{})
	duplicates := []int{}
	for _, id := range idx.DocumentIDs() {
		key := termSetKey(idx.TermFrequencies(id))
		if _, ok := seen[key]; ok {
			duplicates = append(duplicates, id)
			continue
		}
		seen[key] = struct{}{}
	}

	log := slog.Default().With("component", "dedup")
	for _, id := range duplicates {
		if err := idx.Remove(ctx, id, index.Sequential); err != nil {
			return nil, err
		}
		log.Info("removed duplicate document", "doc_id", id)
	}
	return duplicates, nil
}

// termSetKey canonicalizes a document's distinct terms. Terms never contain
// a space, so the join is unambiguous.
func termSetKey(freqs map[string]float64) string {
	terms := slices.Collect(maps.Keys(freqs))
	slices.Sort(terms)
	return strings.Join(terms, " ")
}
