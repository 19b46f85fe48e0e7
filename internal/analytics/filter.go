package analytics

import "github.com/salescope/salescope/internal/model"

// Filter narrows the valid transaction set before analysis. Zero values mean
// "no constraint".
type Filter struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

// IsZero reports whether the filter imposes no constraints.
func (f Filter) IsZero() bool {
	return f.Region == "" && f.MinAmount == nil && f.MaxAmount == nil
}

// FilterSummary records how many transactions each constraint removed.
type FilterSummary struct {
	TotalInput      int
	RemovedByRegion int
	RemovedByAmount int
	FinalCount      int
}

// Apply returns the transactions passing the filter, preserving input order,
// plus removal counts per constraint.
func (f Filter) Apply(txns []model.ValidTransaction) ([]model.ValidTransaction, FilterSummary) {
	summary := FilterSummary{TotalInput: len(txns)}

	kept := txns
	if f.Region != "" {
		filtered := make([]model.ValidTransaction, 0, len(kept))
		for _, t := range kept {
			if t.Region == f.Region {
				filtered = append(filtered, t)
			}
		}
		summary.RemovedByRegion = len(kept) - len(filtered)
		kept = filtered
	}

	if f.MinAmount != nil || f.MaxAmount != nil {
		filtered := make([]model.ValidTransaction, 0, len(kept))
		for _, t := range kept {
			if f.MinAmount != nil && t.LineTotal < *f.MinAmount {
				continue
			}
			if f.MaxAmount != nil && t.LineTotal > *f.MaxAmount {
				continue
			}
			filtered = append(filtered, t)
		}
		summary.RemovedByAmount = len(kept) - len(filtered)
		kept = filtered
	}

	summary.FinalCount = len(kept)
	return kept, summary
}
