package queries

import (
	"context"

	"order-service/internal/infra"
	"order-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindAll(ctx context.Context) ([]*OrderView, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]*OrderView, error)
}

// OrderQueries is a pure projection over the order store; no business
// logic beyond shaping the response.
type OrderQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context) ([]*OrderView, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return view, nil
}

func (q *orderQueriesImpl) List(ctx context.Context) ([]*OrderView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return views, nil
}

// ListByCustomerEmail returns an empty slice, not an error, when the
// customer has no orders.
func (q *orderQueriesImpl) ListByCustomerEmail(ctx context.Context, email string) ([]*OrderView, error) {
	views, err := q.readStore.FindByCustomerEmail(ctx, email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders by customer email")
	}
	return views, nil
}
