//go:build unit

package order_test

import (
	"testing"

	"order-service/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email OK", input: "john@example.com"},
		{name: "surrounding whitespace trimmed", input: "  john@example.com  "},
		{name: "empty email NG", input: "", errIs: order.ErrInvalidEmail},
		{name: "missing domain NG", input: "john@", errIs: order.ErrInvalidEmail},
		{name: "missing at-sign NG", input: "john.example.com", errIs: order.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := order.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "john@example.com", email.Value())
		})
	}
}

func TestCustomerName(t *testing.T) {
	_, err := order.NewCustomerName("   ")
	assert.ErrorIs(t, err, order.ErrBlankCustomerName)

	name, err := order.NewCustomerName("John Doe")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", name.Value())
}

func TestQuantity(t *testing.T) {
	cases := []struct {
		name  string
		input int32
		errIs error
	}{
		{name: "positive OK", input: 1},
		{name: "zero NG", input: 0, errIs: order.ErrInvalidQuantity},
		{name: "negative NG", input: -3, errIs: order.ErrInvalidQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qty, err := order.NewQuantity(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, qty.Value())
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := order.NewMoney(decimal.RequireFromString("-0.01"))
		assert.ErrorIs(t, err, order.ErrNegativePrice)
	})

	t.Run("decimal multiplication is exact", func(t *testing.T) {
		price, err := order.NewMoney(decimal.RequireFromString("10.99"))
		require.NoError(t, err)

		qty, err := order.NewQuantity(2)
		require.NoError(t, err)

		subtotal := price.MulQuantity(qty)
		assert.True(t, subtotal.Decimal().Equal(decimal.RequireFromString("21.98")),
			"expected 21.98, got %s", subtotal)
	})

	t.Run("repeated addition has no drift", func(t *testing.T) {
		cent, err := order.NewMoney(decimal.RequireFromString("0.01"))
		require.NoError(t, err)

		total := order.ZeroMoney()
		for range 100 {
			total = total.Add(cent)
		}
		assert.True(t, total.Decimal().Equal(decimal.RequireFromString("1.00")),
			"expected 1.00, got %s", total)
	})
}
