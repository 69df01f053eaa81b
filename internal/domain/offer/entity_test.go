//go:build unit

package offer_test

import (
	"testing"

	"marketlink/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOffer(t *testing.T) *offer.SellerOffer {
	t.Helper()
	o, err := offer.NewSellerOffer(uuid.New(), uuid.New(), 10, decimal.NewFromInt(20), "fast delivery", "Springfield", nil)
	require.NoError(t, err)
	return o
}

func TestNewSellerOffer(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		o := newPendingOffer(t)
		assert.Equal(t, offer.StatusPending, o.Status())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := offer.NewSellerOffer(uuid.New(), uuid.New(), 0, decimal.NewFromInt(20), "", "Springfield", nil)
		assert.ErrorIs(t, err, offer.ErrNonPositiveQty)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := offer.NewSellerOffer(uuid.New(), uuid.New(), 1, decimal.Zero, "", "Springfield", nil)
		assert.ErrorIs(t, err, offer.ErrNonPositivePrice)
	})

	t.Run("rejects blank location", func(t *testing.T) {
		_, err := offer.NewSellerOffer(uuid.New(), uuid.New(), 1, decimal.NewFromInt(20), "", "  ", nil)
		assert.ErrorIs(t, err, offer.ErrEmptyLocation)
	})
}

func TestSellerOfferTransitions(t *testing.T) {
	t.Run("accept only from pending", func(t *testing.T) {
		o := newPendingOffer(t)
		require.NoError(t, o.Accept())
		assert.Equal(t, offer.StatusAccepted, o.Status())
		assert.ErrorIs(t, o.Accept(), offer.ErrNotPending)
	})

	t.Run("reject only from pending", func(t *testing.T) {
		o := newPendingOffer(t)
		require.NoError(t, o.Reject())
		assert.Equal(t, offer.StatusRejected, o.Status())
		assert.ErrorIs(t, o.Accept(), offer.ErrNotPending)
		assert.ErrorIs(t, o.Reject(), offer.ErrNotPending)
	})
}
