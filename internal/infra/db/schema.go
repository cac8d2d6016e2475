package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied at startup. The statements are idempotent so repeated
// boots against the same database are safe.
const Schema = `
CREATE TABLE IF NOT EXISTS orders (
    id             uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    customer_name  text NOT NULL,
    customer_email text NOT NULL,
    total_amount   numeric(19, 4) NOT NULL CHECK (total_amount >= 0),
    status         text NOT NULL,
    created_at     timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_lines (
    order_id     uuid NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
    line_no      integer NOT NULL,
    product_id   text NOT NULL,
    product_name text NOT NULL,
    unit_price   numeric(19, 4) NOT NULL CHECK (unit_price >= 0),
    quantity     integer NOT NULL CHECK (quantity > 0),
    PRIMARY KEY (order_id, line_no)
);

CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders (customer_email);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at);
`

func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
