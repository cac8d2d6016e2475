//go:build unit

package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"order-service/internal/infra/catalog"
	"order-service/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*config.CatalogConfig)) *catalog.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.CatalogConfig{
		BaseURL:       server.URL,
		Timeout:       2 * time.Second,
		MaxRetries:    0,
		RetryInterval: 10 * time.Millisecond,
	}
	for _, f := range mutate {
		f(&cfg)
	}
	return catalog.NewClient(cfg)
}

func TestFetchProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("success: parses the catalog payload into a snapshot", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/iphone_15", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"iphone_15","name":"iPhone 15","description":"smartphone","price":999.99,"stock":5}`))
		})

		snap, err := client.FetchProduct(ctx, "iphone_15")
		require.NoError(t, err)
		assert.Equal(t, "iphone_15", snap.ID())
		assert.Equal(t, "iPhone 15", snap.Name())
		assert.True(t, snap.UnitPrice().Equal(decimal.RequireFromString("999.99")))
		assert.EqualValues(t, 5, snap.Stock())
	})

	t.Run("error: 404 is reported as absent, not unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.FetchProduct(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, catalog.IsAbsent(err))
		assert.False(t, catalog.IsUnavailable(err))

		var catErr *catalog.Error
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, "ghost", catErr.ProductID)
	})

	t.Run("error: 5xx is reported as unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.FetchProduct(ctx, "1")
		require.Error(t, err)
		assert.True(t, catalog.IsUnavailable(err))
		assert.False(t, catalog.IsAbsent(err))
	})

	t.Run("error: malformed body is reported as unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})

		_, err := client.FetchProduct(ctx, "1")
		require.Error(t, err)
		assert.True(t, catalog.IsUnavailable(err))
	})

	t.Run("error: payload the domain rejects is reported as unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"1","name":"Broken","description":"","price":-1,"stock":5}`))
		})

		_, err := client.FetchProduct(ctx, "1")
		require.Error(t, err)
		assert.True(t, catalog.IsUnavailable(err))
	})

	t.Run("default configuration does not retry transient failures", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.FetchProduct(ctx, "1")
		require.Error(t, err)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("configured retries recover from a transient failure", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"id":"1","name":"iPhone 15","description":"","price":10.99,"stock":5}`))
		}, func(cfg *config.CatalogConfig) {
			cfg.MaxRetries = 3
		})

		snap, err := client.FetchProduct(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "iPhone 15", snap.Name())
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("retries never apply to an absent product", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}, func(cfg *config.CatalogConfig) {
			cfg.MaxRetries = 3
		})

		_, err := client.FetchProduct(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, catalog.IsAbsent(err))
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("cancelled context aborts the retry wait", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}, func(cfg *config.CatalogConfig) {
			cfg.MaxRetries = 5
			cfg.RetryInterval = time.Hour
		})

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.FetchProduct(cancelCtx, "1")
		require.Error(t, err)
		assert.True(t, catalog.IsUnavailable(err))
	})

	t.Run("product id is path-escaped on the wire", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/a%2Fb", r.URL.EscapedPath())
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.FetchProduct(ctx, "a/b")
		require.Error(t, err)
		assert.True(t, catalog.IsAbsent(err))
	})
}
