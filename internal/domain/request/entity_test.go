//go:build unit

package request_test

import (
	"testing"
	"time"

	"marketlink/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRequest(t *testing.T) {
	buyerID := uuid.New()

	t.Run("creates pending request with defaults", func(t *testing.T) {
		urgency, err := request.NewUrgency("")
		require.NoError(t, err)
		assert.Equal(t, request.UrgencyMedium, urgency)

		req, err := request.NewProductRequest(buyerID, "Office Chair", "ergonomic", 5, urgency)
		require.NoError(t, err)

		assert.Equal(t, request.StatusPending, req.Status())
		assert.Equal(t, buyerID, req.BuyerID())
		assert.Equal(t, int32(5), req.Quantity())
		assert.Nil(t, req.AcceptedOfferID())
	})

	t.Run("rejects empty product name", func(t *testing.T) {
		_, err := request.NewProductRequest(buyerID, "   ", "", 5, request.UrgencyLow)
		assert.ErrorIs(t, err, request.ErrEmptyProductName)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := request.NewProductRequest(buyerID, "Desk", "", 0, request.UrgencyLow)
		assert.ErrorIs(t, err, request.ErrNonPositiveQty)
	})

	t.Run("rejects unknown urgency", func(t *testing.T) {
		_, err := request.NewUrgency("Critical")
		assert.ErrorIs(t, err, request.ErrInvalidUrgency)
	})
}

func TestProductRequestTransitions(t *testing.T) {
	newPending := func(t *testing.T) *request.ProductRequest {
		t.Helper()
		req, err := request.NewProductRequest(uuid.New(), "Monitor", "", 2, request.UrgencyHigh)
		require.NoError(t, err)
		return req
	}

	t.Run("broadcast moves pending to notified", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Broadcast())
		assert.Equal(t, request.StatusNotified, req.Status())
		assert.True(t, req.AcceptsOffers())
	})

	t.Run("broadcast fails once notified", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Broadcast())
		assert.ErrorIs(t, req.Broadcast(), request.ErrNotPending)
	})

	t.Run("fulfill requires notified status", func(t *testing.T) {
		req := newPending(t)
		assert.ErrorIs(t, req.Fulfill(uuid.New()), request.ErrNotNotified)
	})

	t.Run("fulfill records the winning offer exactly once", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Broadcast())

		offerID := uuid.New()
		require.NoError(t, req.Fulfill(offerID))

		assert.Equal(t, request.StatusFulfilled, req.Status())
		require.NotNil(t, req.AcceptedOfferID())
		assert.Equal(t, offerID, *req.AcceptedOfferID())
		assert.False(t, req.AcceptsOffers())

		assert.ErrorIs(t, req.Fulfill(uuid.New()), request.ErrNotNotified)
	})

	t.Run("fulfill refuses a second accepted offer on reconstructed state", func(t *testing.T) {
		existing := uuid.New()
		req := request.ReconstructProductRequest(
			uuid.New(), uuid.New(), "Monitor", "", 2,
			request.UrgencyHigh, request.StatusNotified, &existing, time.Now(),
		)
		assert.ErrorIs(t, req.Fulfill(uuid.New()), request.ErrAlreadyHasAccepted)
	})
}
