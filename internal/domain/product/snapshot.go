package product

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrBlankID       = errors.New("product id is required")
	ErrBlankName     = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price cannot be negative")
	ErrNegativeStock = errors.New("product stock cannot be negative")
)

// Snapshot is catalog state read at order-assembly time. It is fetched fresh
// for every order and never cached, so the price an order records is the
// catalog's price at the moment of assembly.
type Snapshot struct {
	id          string
	name        string
	description string
	unitPrice   decimal.Decimal
	stock       int32
}

func NewSnapshot(id, name, description string, unitPrice decimal.Decimal, stock int32) (Snapshot, error) {
	if id == "" {
		return Snapshot{}, ErrBlankID
	}
	if name == "" {
		return Snapshot{}, ErrBlankName
	}
	if unitPrice.IsNegative() {
		return Snapshot{}, ErrNegativePrice
	}
	if stock < 0 {
		return Snapshot{}, ErrNegativeStock
	}
	return Snapshot{
		id:          id,
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		stock:       stock,
	}, nil
}

func (s Snapshot) ID() string                 { return s.id }
func (s Snapshot) Name() string               { return s.name }
func (s Snapshot) Description() string        { return s.description }
func (s Snapshot) UnitPrice() decimal.Decimal { return s.unitPrice }
func (s Snapshot) Stock() int32               { return s.stock }

func (s Snapshot) CanSatisfy(quantity int32) bool {
	return s.stock >= quantity
}
