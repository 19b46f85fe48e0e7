package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescope/salescope/internal/catalog"
	"github.com/salescope/salescope/internal/model"
	"github.com/salescope/salescope/internal/service"
)

func validTxn(id, productID, productName string) model.ValidTransaction {
	return model.ValidTransaction{
		TransactionID: id,
		Date:          time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		ProductID:     productID,
		ProductName:   productName,
		Quantity:      2,
		UnitPrice:     500,
		CustomerID:    "C001",
		Region:        "North",
		LineTotal:     1000,
	}
}

func sampleMapping() catalog.Mapping {
	return catalog.BuildMapping([]service.Product{
		{ID: 101, Title: "Laptop Pro", Category: "laptops", Brand: "Apple", Rating: 4.7},
	})
}

func TestMergeAttachesMetadata(t *testing.T) {
	enriched, stats := Merge([]model.ValidTransaction{
		validTxn("T001", "P101", "Laptop"),
		validTxn("T002", "P999", "Widget"),
	}, sampleMapping())

	require.Len(t, enriched, 2)

	require.True(t, enriched[0].Matched())
	assert.Equal(t, "laptops", enriched[0].Metadata.Category)
	assert.Equal(t, "Apple", enriched[0].Metadata.Brand)
	assert.InDelta(t, 4.7, enriched[0].Metadata.Rating, 0.001)

	assert.False(t, enriched[1].Matched())

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Matched)
	assert.InDelta(t, 50.0, stats.SuccessRate(), 0.001)
	require.Len(t, stats.Unmatched, 1)
	assert.Equal(t, "P999", stats.Unmatched[0].ProductID)
}

func TestMergeEmptyMappingRoundTrip(t *testing.T) {
	txns := []model.ValidTransaction{
		validTxn("T001", "P101", "Laptop"),
		validTxn("T002", "P102", "Mouse"),
		validTxn("T003", "P103", "Keyboard"),
		validTxn("T004", "P104", "Monitor"),
		validTxn("T005", "P105", "Webcam"),
	}

	enriched, stats := Merge(txns, catalog.Mapping{})

	require.Len(t, enriched, 5)
	for i, e := range enriched {
		assert.False(t, e.Matched())
		// Enrichment never alters the underlying transaction.
		assert.Equal(t, txns[i], e.ValidTransaction)
	}
	assert.Equal(t, 0, stats.Matched)
	assert.Zero(t, stats.SuccessRate())
}

func TestMergePreservesOrder(t *testing.T) {
	txns := []model.ValidTransaction{
		validTxn("T003", "P103", "Keyboard"),
		validTxn("T001", "P101", "Laptop"),
		validTxn("T002", "P102", "Mouse"),
	}

	enriched, _ := Merge(txns, sampleMapping())

	require.Len(t, enriched, 3)
	assert.Equal(t, "T003", enriched[0].TransactionID)
	assert.Equal(t, "T001", enriched[1].TransactionID)
	assert.Equal(t, "T002", enriched[2].TransactionID)
}

func TestMergeUnmatchedUniqueAndSorted(t *testing.T) {
	_, stats := Merge([]model.ValidTransaction{
		validTxn("T001", "P300", "Webcam"),
		validTxn("T002", "P200", "Headset"),
		validTxn("T003", "P300", "Webcam"),
	}, catalog.Mapping{})

	require.Len(t, stats.Unmatched, 2)
	assert.Equal(t, "P200", stats.Unmatched[0].ProductID)
	assert.Equal(t, "P300", stats.Unmatched[1].ProductID)
}

func TestMergeEmptyInput(t *testing.T) {
	enriched, stats := Merge(nil, sampleMapping())
	assert.Empty(t, enriched)
	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.SuccessRate())
}
