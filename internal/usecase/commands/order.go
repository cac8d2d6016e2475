package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"order-service/internal/domain/order"
	"order-service/internal/domain/product"
	"order-service/internal/infra/catalog"
	"order-service/internal/pkg/errs"
	"order-service/internal/usecase/queries"

	"golang.org/x/sync/errgroup"
)

type CreateOrderParams struct {
	CustomerName  string
	CustomerEmail string
	LineItems     []LineItemParams
}

type LineItemParams struct {
	ProductID string
	Quantity  int32
}

type OrderCommands interface {
	Create(ctx context.Context, params CreateOrderParams) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	catalog ProductCatalog
	repo    OrderRepository
	factory *order.Factory
}

func NewOrderCommands(productCatalog ProductCatalog, repo OrderRepository, factory *order.Factory) OrderCommands {
	return &orderCommandsImpl{
		catalog: productCatalog,
		repo:    repo,
		factory: factory,
	}
}

// Create assembles and persists one order. Assembly is all-or-nothing:
// any line failing validation, lookup, or the stock check aborts the whole
// order before anything is written. Exactly one store write happens on
// success, zero on any failure path.
func (c *orderCommandsImpl) Create(ctx context.Context, params CreateOrderParams) (*queries.OrderView, error) {
	name, email, requests, err := c.validateParams(params)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	slog.Info("creating order", "customer", name.Value(), "line_items", len(requests))

	snapshots, err := c.resolveSnapshots(ctx, requests)
	if err != nil {
		return nil, err
	}

	orderEntity, err := c.factory.CreateOrder(name, email, requests, snapshots)
	if err != nil {
		var stockErr *order.InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, errs.Mark(err, errs.ErrInsufficientStock)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	view, err := c.repo.Create(ctx, orderEntity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("order created", "order_id", view.ID, "total_amount", view.TotalAmount)
	return view, nil
}

// validateParams fails fast before any external call is made.
func (c *orderCommandsImpl) validateParams(params CreateOrderParams) (order.CustomerName, order.Email, []order.LineRequest, error) {
	name, err := order.NewCustomerName(params.CustomerName)
	if err != nil {
		return order.CustomerName{}, order.Email{}, nil, err
	}

	email, err := order.NewEmail(params.CustomerEmail)
	if err != nil {
		return order.CustomerName{}, order.Email{}, nil, err
	}

	if len(params.LineItems) == 0 {
		return order.CustomerName{}, order.Email{}, nil, order.ErrNoLines
	}

	requests := make([]order.LineRequest, 0, len(params.LineItems))
	for _, item := range params.LineItems {
		req, err := order.NewLineRequest(item.ProductID, item.Quantity)
		if err != nil {
			return order.CustomerName{}, order.Email{}, nil, err
		}
		requests = append(requests, req)
	}

	return name, email, requests, nil
}

// resolveSnapshots fetches every distinct product concurrently. The result
// map is keyed by product id, so line order (and therefore the total) is
// unaffected by resolution order.
func (c *orderCommandsImpl) resolveSnapshots(ctx context.Context, requests []order.LineRequest) (map[string]product.Snapshot, error) {
	ids := make([]string, 0, len(requests))
	seen := make(map[string]struct{}, len(requests))
	for _, req := range requests {
		if _, ok := seen[req.ProductID()]; ok {
			continue
		}
		seen[req.ProductID()] = struct{}{}
		ids = append(ids, req.ProductID())
	}

	var mu sync.Mutex
	snapshots := make(map[string]product.Snapshot, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			snap, err := c.catalog.FetchProduct(gctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			snapshots[id] = snap
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		switch {
		case catalog.IsAbsent(err):
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		case catalog.IsUnavailable(err):
			return nil, errs.Mark(err, errs.ErrCatalogUnavailable)
		default:
			return nil, errs.Wrap(err, "failed to resolve product snapshots")
		}
	}

	return snapshots, nil
}
