package readstore

import (
	"context"

	"order-service/internal/infra"
	"order-service/internal/pkg/pgconv"
	"order-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectOrderByIDSQL = `
SELECT id, customer_name, customer_email, total_amount, status, created_at
FROM orders
WHERE id = $1`

const selectAllOrdersSQL = `
SELECT id, customer_name, customer_email, total_amount, status, created_at
FROM orders
ORDER BY created_at, id`

const selectOrdersByEmailSQL = `
SELECT id, customer_name, customer_email, total_amount, status, created_at
FROM orders
WHERE customer_email = $1
ORDER BY created_at, id`

const selectLinesByOrderIDsSQL = `
SELECT order_id, product_id, product_name, unit_price, quantity
FROM order_lines
WHERE order_id = ANY($1)
ORDER BY order_id, line_no`

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.pool.QueryRow(ctx, selectOrderByIDSQL, id)

	view, err := scanOrderRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	if err := r.attachLines(ctx, []*queries.OrderView{view}); err != nil {
		return nil, err
	}

	return view, nil
}

func (r *OrderReadStore) FindAll(ctx context.Context) ([]*queries.OrderView, error) {
	return r.findMany(ctx, selectAllOrdersSQL)
}

func (r *OrderReadStore) FindByCustomerEmail(ctx context.Context, email string) ([]*queries.OrderView, error) {
	return r.findMany(ctx, selectOrdersByEmailSQL, email)
}

func (r *OrderReadStore) findMany(ctx context.Context, sql string, args ...any) ([]*queries.OrderView, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query orders", err)
	}
	defer rows.Close()

	views := make([]*queries.OrderView, 0)
	for rows.Next() {
		view, err := scanOrderRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	if err := r.attachLines(ctx, views); err != nil {
		return nil, err
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (*queries.OrderView, error) {
	var (
		view      queries.OrderView
		total     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&view.ID, &view.CustomerName, &view.CustomerEmail, &total, &view.Status, &createdAt)
	if err != nil {
		return nil, err
	}

	view.TotalAmount, err = pgconv.DecimalFromNumeric(total)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.LineItems = make([]queries.OrderLineView, 0)

	return &view, nil
}

// attachLines loads the line items for every view in one query and fans
// them back out, keeping the persisted line_no order.
func (r *OrderReadStore) attachLines(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*queries.OrderView, len(views))
	ids := make([]uuid.UUID, len(views))
	for i, view := range views {
		ids[i] = view.ID
		byID[view.ID] = view
	}

	rows, err := r.pool.Query(ctx, selectLinesByOrderIDsSQL, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query order lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			line    queries.OrderLineView
			price   pgtype.Numeric
		)
		if err := rows.Scan(&orderID, &line.ProductID, &line.ProductName, &price, &line.Quantity); err != nil {
			return infra.WrapRepoErr("failed to scan order line row", err)
		}
		line.Price, err = pgconv.DecimalFromNumeric(price)
		if err != nil {
			return infra.WrapRepoErr("invalid unit price in order line", err)
		}

		view := byID[orderID]
		view.LineItems = append(view.LineItems, line)
	}

	return rows.Err()
}
