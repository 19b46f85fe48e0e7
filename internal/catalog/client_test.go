package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescope/salescope/internal/service"
)

const samplePayload = `{
	"products": [
		{"id": 101, "title": "Laptop Pro", "category": "laptops", "brand": "Apple", "price": 1749, "rating": 4.7},
		{"id": 102, "title": "Wireless Mouse", "category": "peripherals", "brand": "Logitech", "rating": 4.2}
	],
	"total": 2
}`

func fastRetry() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}
}

func TestFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, fastRetry())
	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, 101, products[0].ID)
	assert.Equal(t, "Laptop Pro", products[0].Title)
	assert.Equal(t, "laptops", products[0].Category)
	assert.Equal(t, "Apple", products[0].Brand)
	assert.InDelta(t, 4.7, products[0].Rating, 0.001)
}

func TestFetchAllRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, fastRetry())
	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, products, 2)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchAllDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, fastRetry())
	_, err := client.FetchAll(context.Background())
	require.Error(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchAllMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, fastRetry())
	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetchAllUnreachable(t *testing.T) {
	// Closed server: connection refused on every attempt.
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second, fastRetry())
	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", 0, service.RetryOptions{})
	assert.Equal(t, DefaultURL, client.url)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
