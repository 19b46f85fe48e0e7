// Package service defines the interfaces for the pipeline's injected collaborators.
package service

import (
	"context"
	"time"

	"github.com/salescope/salescope/internal/model"
)

// ProductFetcher retrieves the external product catalog. Implementations are
// best-effort: the pipeline treats any error as "no metadata available" and
// continues unenriched.
type ProductFetcher interface {
	FetchAll(ctx context.Context) ([]Product, error)
}

// Product is one catalog entry as returned by the product API.
type Product struct {
	ID       int
	Title    string
	Category string
	Brand    string
	Rating   float64
}

// Metadata converts a catalog entry into the enrichment attributes attached
// to transactions.
func (p Product) Metadata() model.ProductMetadata {
	return model.ProductMetadata{
		Title:    p.Title,
		Category: p.Category,
		Brand:    p.Brand,
		Rating:   p.Rating,
	}
}

// RetryOptions configures retry behavior for external calls.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
