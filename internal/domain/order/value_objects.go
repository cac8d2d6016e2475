package order

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrBlankCustomerName = errors.New("customer name is required")
	ErrBlankProductID    = errors.New("product id is required")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type CustomerName struct {
	value string
}

func NewCustomerName(s string) (CustomerName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CustomerName{}, ErrBlankCustomerName
	}
	return CustomerName{value: s}, nil
}

func (n CustomerName) Value() string {
	return n.value
}

// Money is an exact decimal amount. Floating point is never used for
// pricing so repeated cent values (10.99 * 2) sum without drift.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount}, nil
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) MulQuantity(q Quantity) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(q.Value())))}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.String()
}

type Quantity struct {
	value int32
}

func NewQuantity(v int32) (Quantity, error) {
	if v <= 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int32 {
	return q.value
}
