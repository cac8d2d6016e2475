package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"order-service/internal/domain/product"
	"order-service/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// productPayload mirrors the catalog's wire shape:
// GET {base}/api/products/{id} -> {id, name, description, price, stock}
type productPayload struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
}

// Client fetches product snapshots from the external catalog service.
// Every call is bounded by the configured timeout; an unbounded remote
// call inside request handling is a correctness hazard.
// Safe for concurrent use.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	maxRetries    int
	retryInterval time.Duration
}

func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		maxRetries:    cfg.MaxRetries,
		retryInterval: cfg.RetryInterval,
	}
}

// FetchProduct resolves a fresh snapshot for one product. Absence and
// transport failure are reported as distinct error kinds; only transport
// failures are retried, and only when retries are configured.
func (c *Client) FetchProduct(ctx context.Context, productID string) (product.Snapshot, error) {
	for attempt := 0; ; attempt++ {
		snap, err := c.fetchOnce(ctx, productID)
		if err == nil {
			return snap, nil
		}

		if !IsUnavailable(err) || attempt >= c.maxRetries {
			return product.Snapshot{}, err
		}

		waitTime := time.Duration(attempt+1) * c.retryInterval
		slog.Warn("retrying product fetch",
			"product_id", productID,
			"attempt", attempt+1,
			"wait_time", waitTime,
			"error", err)

		select {
		case <-ctx.Done():
			return product.Snapshot{}, NewError(KindUnavailable, productID, ctx.Err())
		case <-time.After(waitTime):
		}
	}
}

func (c *Client) fetchOnce(ctx context.Context, productID string) (product.Snapshot, error) {
	endpoint := c.baseURL + "/api/products/" + url.PathEscape(productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return product.Snapshot{}, NewError(KindUnavailable, productID, err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Info("fetching product from catalog", "product_id", productID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("catalog request failed", "product_id", productID, "error", err)
		return product.Snapshot{}, NewError(KindUnavailable, productID, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return product.Snapshot{}, NewError(KindAbsent, productID, nil)
	case resp.StatusCode != http.StatusOK:
		return product.Snapshot{}, NewError(KindUnavailable, productID,
			fmt.Errorf("unexpected status %d from catalog", resp.StatusCode))
	}

	var payload productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return product.Snapshot{}, NewError(KindUnavailable, productID, err)
	}

	snap, err := product.NewSnapshot(payload.ID, payload.Name, payload.Description, payload.Price, payload.Stock)
	if err != nil {
		// The catalog returned a body our domain rejects (negative price etc.)
		return product.Snapshot{}, NewError(KindUnavailable, productID, err)
	}

	return snap, nil
}
