package order

import (
	"errors"
	"fmt"

	"order-service/internal/domain/product"
	"order-service/internal/pkg/clock"
)

var ErrMissingSnapshot = errors.New("missing product snapshot for line item")

// InsufficientStockError reports a stock check failure for one line.
// It is deterministic for a given catalog state, so callers must not retry.
type InsufficientStockError struct {
	ProductID string
	Requested int32
	Available int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateOrder builds an order from validated line requests and the catalog
// snapshots resolved for them. Assembly is all-or-nothing: the first stock
// failure aborts the whole order. snapshots must be keyed by product id and
// lines keep the request order.
func (f *Factory) CreateOrder(
	name CustomerName,
	email Email,
	requests []LineRequest,
	snapshots map[string]product.Snapshot,
) (*Order, error) {
	if len(requests) == 0 {
		return nil, ErrNoLines
	}

	lines := make([]Line, 0, len(requests))
	for _, req := range requests {
		snap, ok := snapshots[req.ProductID()]
		if !ok {
			return nil, ErrMissingSnapshot
		}

		if !snap.CanSatisfy(req.Quantity().Value()) {
			return nil, &InsufficientStockError{
				ProductID: snap.ID(),
				Requested: req.Quantity().Value(),
				Available: snap.Stock(),
			}
		}

		// Price and name come from the catalog snapshot, never from the client.
		unitPrice, err := NewMoney(snap.UnitPrice())
		if err != nil {
			return nil, err
		}
		lines = append(lines, NewLine(snap.ID(), snap.Name(), unitPrice, req.Quantity()))
	}

	return NewOrder(name, email, lines, f.Clock.Now())
}
