//go:build unit

package order_test

import (
	"testing"
	"time"

	"marketlink/internal/domain/order"
	"marketlink/internal/domain/product"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalCmp = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func catalogItem(t *testing.T, price int64, stock int32) *product.CatalogItem {
	t.Helper()
	item, err := product.NewCatalogItem("Office Chair", decimal.NewFromInt(price), stock, "Springfield", nil, uuid.New())
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("prices the order and freezes the invoice", func(t *testing.T) {
		item := catalogItem(t, 20, 50)
		buyerID := uuid.New()

		o, err := order.NewOrder(item, buyerID, 10, "42 Main St", now)
		require.NoError(t, err)

		assert.Equal(t, item.ID(), o.ProductID())
		assert.Equal(t, buyerID, o.BuyerID())
		assert.True(t, o.TotalPrice().Equal(decimal.NewFromInt(200)))

		want := order.InvoiceSnapshot{
			GeneratedAt: now,
			Items: []order.InvoiceLine{{
				ProductName: "Office Chair",
				UnitPrice:   decimal.NewFromInt(20),
				Quantity:    10,
				ItemTotal:   decimal.NewFromInt(200),
			}},
			TotalAmount: decimal.NewFromInt(200),
		}
		if diff := cmp.Diff(want, o.Invoice(), decimalCmp); diff != "" {
			t.Errorf("invoice snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		item := catalogItem(t, 20, 5)
		_, err := order.NewOrder(item, uuid.New(), 6, "42 Main St", now)
		assert.ErrorIs(t, err, order.ErrInsufficientStock)
	})

	t.Run("allows buying the entire stock", func(t *testing.T) {
		item := catalogItem(t, 20, 5)
		_, err := order.NewOrder(item, uuid.New(), 5, "42 Main St", now)
		assert.NoError(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		item := catalogItem(t, 20, 5)
		_, err := order.NewOrder(item, uuid.New(), 0, "42 Main St", now)
		assert.ErrorIs(t, err, order.ErrNonPositiveQty)
	})

	t.Run("rejects blank delivery address", func(t *testing.T) {
		item := catalogItem(t, 20, 5)
		_, err := order.NewOrder(item, uuid.New(), 1, "   ", now)
		assert.ErrorIs(t, err, order.ErrEmptyDeliveryAddress)
	})
}
