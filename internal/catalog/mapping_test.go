package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescope/salescope/internal/service"
)

func TestBuildMapping(t *testing.T) {
	mapping := BuildMapping([]service.Product{
		{ID: 101, Title: "Laptop Pro", Category: "laptops", Brand: "Apple", Rating: 4.7},
		{ID: 5, Title: "Mousepad", Category: "accessories", Brand: "Generic", Rating: 3.9},
	})

	require.Len(t, mapping, 2)
	assert.Equal(t, "laptops", mapping[101].Category)
}

func TestBuildMappingEmpty(t *testing.T) {
	assert.Empty(t, BuildMapping(nil))
	assert.Empty(t, BuildMapping([]service.Product{}))
}

func TestLookup(t *testing.T) {
	mapping := BuildMapping([]service.Product{
		{ID: 101, Title: "Laptop Pro", Category: "laptops", Brand: "Apple", Rating: 4.7},
		{ID: 5, Title: "Mousepad", Category: "accessories", Brand: "Generic", Rating: 3.9},
	})

	tests := []struct {
		name      string
		productID string
		wantBrand string
		wantOK    bool
	}{
		{name: "standard id", productID: "P101", wantBrand: "Apple", wantOK: true},
		{name: "short numeric part", productID: "P5", wantBrand: "Generic", wantOK: true},
		{name: "unknown catalog id", productID: "P999", wantOK: false},
		{name: "no numeric part", productID: "Pabc", wantOK: false},
		{name: "empty id", productID: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, ok := mapping.Lookup(tt.productID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantBrand, meta.Brand)
			}
		})
	}
}
