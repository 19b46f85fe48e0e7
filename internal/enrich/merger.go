// Package enrich joins valid transactions with externally fetched product
// metadata and writes the enriched data file.
package enrich

import (
	"log/slog"
	"sort"

	"github.com/salescope/salescope/internal/catalog"
	"github.com/salescope/salescope/internal/model"
)

// UnmatchedProduct identifies a product no catalog entry covered.
type UnmatchedProduct struct {
	ProductID   string
	ProductName string
}

// Stats summarizes an enrichment run.
type Stats struct {
	Total     int
	Matched   int
	Unmatched []UnmatchedProduct
}

// SuccessRate returns the matched percentage, 0 for an empty run.
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Total) * 100
}

// Merge attaches catalog metadata to each valid transaction. Input order is
// preserved and the transactions themselves are never altered; a missing or
// empty mapping yields fully unenriched output, not an error.
func Merge(txns []model.ValidTransaction, mapping catalog.Mapping) ([]model.EnrichedTransaction, Stats) {
	enriched := make([]model.EnrichedTransaction, 0, len(txns))
	stats := Stats{Total: len(txns)}
	unmatched := make(map[string]string)

	for _, t := range txns {
		e := model.EnrichedTransaction{ValidTransaction: t}
		if meta, ok := mapping.Lookup(t.ProductID); ok {
			e.Metadata = &meta
			stats.Matched++
		} else {
			unmatched[t.ProductID] = t.ProductName
		}
		enriched = append(enriched, e)
	}

	for id, name := range unmatched {
		stats.Unmatched = append(stats.Unmatched, UnmatchedProduct{ProductID: id, ProductName: name})
	}
	sort.Slice(stats.Unmatched, func(i, j int) bool {
		return stats.Unmatched[i].ProductID < stats.Unmatched[j].ProductID
	})

	slog.Info("Enrichment complete",
		"total", stats.Total,
		"matched", stats.Matched,
		"unmatched_products", len(stats.Unmatched))

	return enriched, stats
}
