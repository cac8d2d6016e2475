package response

import (
	"time"

	"order-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID            uuid.UUID               `json:"id"`
	CustomerName  string                  `json:"customerName"`
	CustomerEmail string                  `json:"customerEmail"`
	LineItems     []OrderLineItemResponse `json:"orderLineItems"`
	TotalAmount   decimal.Decimal         `json:"totalAmount"`
	CreatedAt     time.Time               `json:"orderDate"`
	Status        string                  `json:"orderStatus"`
}

type OrderLineItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	// Field names match the read model; only the wire names differ.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	responses := make([]*OrderResponse, len(views))
	for i, view := range views {
		responses[i] = FromOrderView(view)
	}
	return responses
}
