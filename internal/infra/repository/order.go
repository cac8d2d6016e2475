package repository

import (
	"context"

	"order-service/internal/domain/order"
	"order-service/internal/infra"
	"order-service/internal/infra/db"
	"order-service/internal/pkg/pgconv"
	"order-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertOrderSQL = `
INSERT INTO orders (customer_name, customer_email, total_amount, status, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const insertOrderLineSQL = `
INSERT INTO order_lines (order_id, line_no, product_id, product_name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5, $6)`

// OrderRepository is the write side of the order store. One order is one
// atomic insert: the order row and its lines commit together or not at all.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (*queries.OrderView, error) {
	id, err := db.WithDefaultRetry(ctx, r.pool, func(tx pgx.Tx) (uuid.UUID, error) {
		var orderID uuid.UUID
		err := tx.QueryRow(ctx, insertOrderSQL,
			o.CustomerName().Value(),
			o.CustomerEmail().Value(),
			pgconv.NumericFromDecimal(o.TotalAmount().Decimal()),
			o.Status().String(),
			pgconv.TimeToPgtype(o.CreatedAt()),
		).Scan(&orderID)
		if err != nil {
			return uuid.Nil, err
		}

		// line_no preserves the submitted line order
		for i, line := range o.Lines() {
			_, err := tx.Exec(ctx, insertOrderLineSQL,
				orderID,
				int32(i+1),
				line.ProductID(),
				line.ProductName(),
				pgconv.NumericFromDecimal(line.UnitPrice().Decimal()),
				line.Quantity().Value(),
			)
			if err != nil {
				return uuid.Nil, err
			}
		}

		return orderID, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create order", err)
	}

	return toOrderView(id, o), nil
}

func toOrderView(id uuid.UUID, o *order.Order) *queries.OrderView {
	lines := make([]queries.OrderLineView, len(o.Lines()))
	for i, line := range o.Lines() {
		lines[i] = queries.OrderLineView{
			ProductID:   line.ProductID(),
			ProductName: line.ProductName(),
			Price:       line.UnitPrice().Decimal(),
			Quantity:    line.Quantity().Value(),
		}
	}

	return &queries.OrderView{
		ID:            id,
		CustomerName:  o.CustomerName().Value(),
		CustomerEmail: o.CustomerEmail().Value(),
		LineItems:     lines,
		TotalAmount:   o.TotalAmount().Decimal(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
	}
}
