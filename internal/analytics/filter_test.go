package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flt(v float64) *float64 { return &v }

func TestFilterZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Region: "North"}.IsZero())
	assert.False(t, Filter{MinAmount: flt(10)}.IsZero())

	kept, summary := Filter{}.Apply(sampleTxns())
	assert.Len(t, kept, 5)
	assert.Equal(t, 5, summary.FinalCount)
	assert.Zero(t, summary.RemovedByRegion)
	assert.Zero(t, summary.RemovedByAmount)
}

func TestFilterByRegion(t *testing.T) {
	kept, summary := Filter{Region: "North"}.Apply(sampleTxns())

	require.Len(t, kept, 2)
	assert.Equal(t, "T001", kept[0].TransactionID)
	assert.Equal(t, "T003", kept[1].TransactionID)
	assert.Equal(t, 3, summary.RemovedByRegion)
	assert.Equal(t, 2, summary.FinalCount)
}

func TestFilterByAmount(t *testing.T) {
	kept, summary := Filter{MinAmount: flt(2000), MaxAmount: flt(50000)}.Apply(sampleTxns())

	// Line totals: 90000, 2500, 45000, 3000, 1000.
	require.Len(t, kept, 3)
	assert.Equal(t, "T002", kept[0].TransactionID)
	assert.Equal(t, "T003", kept[1].TransactionID)
	assert.Equal(t, "T004", kept[2].TransactionID)
	assert.Equal(t, 2, summary.RemovedByAmount)
}

func TestFilterCombined(t *testing.T) {
	kept, summary := Filter{Region: "North", MinAmount: flt(50000)}.Apply(sampleTxns())

	require.Len(t, kept, 1)
	assert.Equal(t, "T001", kept[0].TransactionID)
	assert.Equal(t, 3, summary.RemovedByRegion)
	assert.Equal(t, 1, summary.RemovedByAmount)
	assert.Equal(t, 1, summary.FinalCount)
	assert.Equal(t, 5, summary.TotalInput)
}
