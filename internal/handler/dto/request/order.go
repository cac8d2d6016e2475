package request

import (
	"order-service/internal/usecase/commands"
)

type CreateOrderRequest struct {
	CustomerName   string                 `json:"customerName" binding:"required"`
	CustomerEmail  string                 `json:"customerEmail" binding:"required,email"`
	OrderLineItems []OrderLineItemRequest `json:"orderLineItems" binding:"required,min=1,dive"`
}

type OrderLineItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int32  `json:"quantity" binding:"required,gt=0"`
}

func (r CreateOrderRequest) ToParams() commands.CreateOrderParams {
	lineItems := make([]commands.LineItemParams, len(r.OrderLineItems))
	for i, item := range r.OrderLineItems {
		lineItems[i] = commands.LineItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return commands.CreateOrderParams{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		LineItems:     lineItems,
	}
}
