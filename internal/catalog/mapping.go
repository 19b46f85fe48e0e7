package catalog

import (
	"strconv"
	"strings"

	"github.com/salescope/salescope/internal/model"
	"github.com/salescope/salescope/internal/service"
)

// Mapping indexes product metadata by numeric catalog id.
type Mapping map[int]model.ProductMetadata

// BuildMapping indexes fetched products for enrichment lookups. A nil or
// empty product list yields an empty mapping, which enriches nothing.
func BuildMapping(products []service.Product) Mapping {
	m := make(Mapping, len(products))
	for _, p := range products {
		m[p.ID] = p.Metadata()
	}
	return m
}

// Lookup resolves a sales product identifier against the catalog. The
// numeric part of the identifier is the catalog key: P101 maps to catalog id
// 101. Identifiers without a numeric suffix never match.
func (m Mapping) Lookup(productID string) (model.ProductMetadata, bool) {
	numeric := strings.TrimPrefix(productID, "P")
	id, err := strconv.Atoi(numeric)
	if err != nil {
		return model.ProductMetadata{}, false
	}

	meta, ok := m[id]
	return meta, ok
}
