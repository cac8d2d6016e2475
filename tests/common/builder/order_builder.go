//go:build unit || integration

package builder

import (
	"time"

	domorder "order-service/internal/domain/order"
	"order-service/internal/domain/product"
	reqdto "order-service/internal/handler/dto/request"
	"order-service/internal/usecase/commands"
	"order-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	ProductID     string
	ProductName   string
	Price         decimal.Decimal
	Quantity      int32
	Stock         int32
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            uuid.New(),
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		ProductID:     "1",
		ProductName:   "iPhone 15",
		Price:         decimal.RequireFromString("10.99"),
		Quantity:      2,
		Stock:         5,
		CreatedAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildSnapshot() product.Snapshot {
	snap, err := product.NewSnapshot(b.ProductID, b.ProductName, "test product", b.Price, b.Stock)
	if err != nil {
		panic(err)
	}
	return snap
}

func (b *OrderBuilder) BuildLineRequest() domorder.LineRequest {
	req, err := domorder.NewLineRequest(b.ProductID, b.Quantity)
	if err != nil {
		panic(err)
	}
	return req
}

func (b *OrderBuilder) BuildCreateParams() commands.CreateOrderParams {
	return commands.CreateOrderParams{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		LineItems: []commands.LineItemParams{
			{ProductID: b.ProductID, Quantity: b.Quantity},
		},
	}
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		OrderLineItems: []reqdto.OrderLineItemRequest{
			{ProductID: b.ProductID, Quantity: b.Quantity},
		},
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	total := b.Price.Mul(decimal.NewFromInt(int64(b.Quantity)))
	return &queries.OrderView{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		LineItems: []queries.OrderLineView{
			{
				ProductID:   b.ProductID,
				ProductName: b.ProductName,
				Price:       b.Price,
				Quantity:    b.Quantity,
			},
		},
		TotalAmount: total,
		Status:      domorder.StatusPlaced.String(),
		CreatedAt:   b.CreatedAt,
	}
}
