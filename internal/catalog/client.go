// Package catalog fetches external product metadata and maps it onto the
// product identifiers used in the sales data.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/salescope/salescope/internal/common"
	"github.com/salescope/salescope/internal/service"
)

// DefaultURL is the product catalog endpoint.
const DefaultURL = "https://dummyjson.com/products?limit=100"

// DefaultTimeout bounds a single catalog request.
const DefaultTimeout = 10 * time.Second

// Client implements service.ProductFetcher against a DummyJSON-style
// products endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	retry      service.RetryOptions
}

// Catalog API response types.
type productsResponse struct {
	Products []productEntry `json:"products"`
}

type productEntry struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Rating   float64 `json:"rating"`
}

// NewClient creates a catalog client. An empty url or non-positive timeout
// fall back to the defaults.
func NewClient(url string, timeout time.Duration, retry service.RetryOptions) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retry: retry,
	}
}

// FetchAll retrieves the full product catalog. Server-side failures are
// retried with backoff; the terminal error is returned for the caller to
// degrade to an empty mapping.
func (c *Client) FetchAll(ctx context.Context) ([]service.Product, error) {
	var products []service.Product

	err := common.WithRetry(ctx, func() error {
		fetched, err := c.fetchOnce(ctx)
		if err != nil {
			return err
		}
		products = fetched
		return nil
	}, c.retry)
	if err != nil {
		return nil, err
	}

	slog.Info("Fetched product catalog",
		"url", c.url,
		"products", len(products))

	return products, nil
}

func (c *Client) fetchOnce(ctx context.Context) ([]service.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("failed to create catalog request: %w", err),
			Retryable: false,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("catalog request failed: %w", err),
			Retryable: true,
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %v", common.ErrRateLimit, err)
		}
		return nil, &common.RetryableError{
			Err:       err,
			Retryable: resp.StatusCode >= 500,
		}
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("failed to decode catalog response: %w", err),
			Retryable: false,
		}
	}

	products := make([]service.Product, 0, len(payload.Products))
	for _, p := range payload.Products {
		products = append(products, service.Product{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		})
	}

	return products, nil
}
