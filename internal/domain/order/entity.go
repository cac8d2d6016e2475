package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLines       = errors.New("order must contain at least one line item")
	ErrInvalidStatus = errors.New("invalid order status")
)

// LineRequest is the validated input for one desired product. It carries
// the client's intent only; pricing always comes from the catalog.
type LineRequest struct {
	productID string
	quantity  Quantity
}

func NewLineRequest(productID string, quantity int32) (LineRequest, error) {
	if productID == "" {
		return LineRequest{}, ErrBlankProductID
	}
	qty, err := NewQuantity(quantity)
	if err != nil {
		return LineRequest{}, err
	}
	return LineRequest{productID: productID, quantity: qty}, nil
}

func (r LineRequest) ProductID() string  { return r.productID }
func (r LineRequest) Quantity() Quantity { return r.quantity }

// Line is a denormalized copy of catalog data at order time. Later catalog
// changes never alter a persisted line.
type Line struct {
	productID   string
	productName string
	unitPrice   Money
	quantity    Quantity
}

func NewLine(productID, productName string, unitPrice Money, quantity Quantity) Line {
	return Line{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}
}

func (l Line) ProductID() string   { return l.productID }
func (l Line) ProductName() string { return l.productName }
func (l Line) UnitPrice() Money    { return l.unitPrice }
func (l Line) Quantity() Quantity  { return l.quantity }

func (l Line) Subtotal() Money {
	return l.unitPrice.MulQuantity(l.quantity)
}

// Order is append-only after creation. No update operation exists.
type Order struct {
	id            uuid.UUID
	customerName  CustomerName
	customerEmail Email
	lines         []Line
	totalAmount   Money
	status        Status
	createdAt     time.Time
}

// NewOrder computes the total from the given lines in declaration order.
// Lines must already carry catalog-sourced prices. The id stays zero until
// the store assigns one on insert.
func NewOrder(name CustomerName, email Email, lines []Line, createdAt time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	total := ZeroMoney()
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	return &Order{
		customerName:  name,
		customerEmail: email,
		lines:         lines,
		totalAmount:   total,
		status:        StatusPlaced,
		createdAt:     createdAt,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	name CustomerName,
	email Email,
	lines []Line,
	totalAmount Money,
	status Status,
	createdAt time.Time,
) *Order {
	return &Order{
		id:            id,
		customerName:  name,
		customerEmail: email,
		lines:         lines,
		totalAmount:   totalAmount,
		status:        status,
		createdAt:     createdAt,
	}
}

func (o *Order) ID() uuid.UUID              { return o.id }
func (o *Order) CustomerName() CustomerName { return o.customerName }
func (o *Order) CustomerEmail() Email       { return o.customerEmail }
func (o *Order) Lines() []Line              { return o.lines }
func (o *Order) TotalAmount() Money         { return o.totalAmount }
func (o *Order) Status() Status             { return o.status }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
