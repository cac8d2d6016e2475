package commands

import (
	"context"

	"order-service/internal/domain/order"
	"order-service/internal/domain/product"
	"order-service/internal/usecase/queries"
)

// ProductCatalog is the outbound port to the external product service.
// Implementations must report absence and transport failure as distinct
// errors (catalog.IsAbsent / catalog.IsUnavailable).
type ProductCatalog interface {
	FetchProduct(ctx context.Context, productID string) (product.Snapshot, error)
}

// OrderRepository persists an assembled order atomically and returns the
// stored row with its store-assigned identifier.
type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (*queries.OrderView, error)
}
