//go:build unit

package commands_test

import (
	"context"
	"testing"

	"marketlink/internal/domain/offer"
	"marketlink/internal/domain/request"
	reqdto "marketlink/internal/handler/dto/request"
	"marketlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotifiedRequest(t *testing.T, store *fakeStore) *request.ProductRequest {
	t.Helper()
	req, err := request.NewProductRequest(uuid.New(), "Office Chair", "", 10, request.UrgencyMedium)
	require.NoError(t, err)
	require.NoError(t, req.Broadcast())
	store.requests[req.ID()] = req
	return req
}

func seedPendingOffer(t *testing.T, store *fakeStore, requestID uuid.UUID, price int64) *offer.SellerOffer {
	t.Helper()
	o, err := offer.NewSellerOffer(uuid.New(), requestID, 10, decimal.NewFromInt(price), "", "Springfield", nil)
	require.NoError(t, err)
	store.offers[o.ID()] = o
	return o
}

func newOfferCommands(store *fakeStore) commands.OfferCommands {
	return commands.NewOfferCommands(&fakeUoW{store: store}, &fakeOfferQueries{store: store})
}

func TestSubmitOffer(t *testing.T) {
	ctx := context.Background()
	body := reqdto.SubmitOfferRequest{Quantity: 10, Price: 20, Location: "Springfield"}

	t.Run("creates a pending offer on a notified request", func(t *testing.T) {
		store := newFakeStore()
		req := seedNotifiedRequest(t, store)
		sellerID := uuid.New()

		view, err := newOfferCommands(store).Submit(ctx, body, req.ID(), sellerID)
		require.NoError(t, err)

		assert.Equal(t, sellerID, view.SellerID)
		assert.Equal(t, req.ID(), view.RequestID)
		assert.Equal(t, offer.StatusPending.String(), view.Status)
		assert.Len(t, store.offers, 1)
	})

	t.Run("rejects a second offer from the same seller", func(t *testing.T) {
		store := newFakeStore()
		req := seedNotifiedRequest(t, store)
		sellerID := uuid.New()
		cmds := newOfferCommands(store)

		_, err := cmds.Submit(ctx, body, req.ID(), sellerID)
		require.NoError(t, err)

		_, err = cmds.Submit(ctx, body, req.ID(), sellerID)
		assert.ErrorIs(t, err, commands.ErrDuplicateOffer)
		assert.Len(t, store.offers, 1)
	})

	t.Run("rejects offers on a request that was never broadcast", func(t *testing.T) {
		store := newFakeStore()
		req, err := request.NewProductRequest(uuid.New(), "Office Chair", "", 10, request.UrgencyMedium)
		require.NoError(t, err)
		store.requests[req.ID()] = req

		_, err = newOfferCommands(store).Submit(ctx, body, req.ID(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrRequestNotAcceptingOffers)
	})

	t.Run("unknown request", func(t *testing.T) {
		store := newFakeStore()
		_, err := newOfferCommands(store).Submit(ctx, body, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})
}

func TestAcceptOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("settles the request in one pass", func(t *testing.T) {
		store := newFakeStore()
		req := seedNotifiedRequest(t, store)
		won := seedPendingOffer(t, store, req.ID(), 20)
		loser1 := seedPendingOffer(t, store, req.ID(), 25)
		loser2 := seedPendingOffer(t, store, req.ID(), 30)

		result, err := newOfferCommands(store).Accept(ctx, won.ID())
		require.NoError(t, err)

		assert.Equal(t, won.ID(), result.OfferID)
		assert.Equal(t, req.ID(), result.RequestID)
		assert.Equal(t, int64(2), result.RejectedSiblings)

		assert.Equal(t, offer.StatusAccepted, store.offers[won.ID()].Status())
		assert.Equal(t, offer.StatusRejected, store.offers[loser1.ID()].Status())
		assert.Equal(t, offer.StatusRejected, store.offers[loser2.ID()].Status())

		settled := store.requests[req.ID()]
		assert.Equal(t, request.StatusFulfilled, settled.Status())
		require.NotNil(t, settled.AcceptedOfferID())
		assert.Equal(t, won.ID(), *settled.AcceptedOfferID())

		// The catalog item carries the request's name and the winning terms.
		require.Len(t, store.products, 1)
		item := store.products[result.ProductID]
		require.NotNil(t, item)
		assert.Equal(t, "Office Chair", item.Name())
		assert.True(t, item.Price().Equal(decimal.NewFromInt(20)))
		assert.Equal(t, int32(10), item.Quantity())
		assert.Equal(t, won.SellerID(), item.OwnerID())
	})

	t.Run("second accept on the same request fails", func(t *testing.T) {
		store := newFakeStore()
		req := seedNotifiedRequest(t, store)
		first := seedPendingOffer(t, store, req.ID(), 20)
		second := seedPendingOffer(t, store, req.ID(), 25)
		cmds := newOfferCommands(store)

		_, err := cmds.Accept(ctx, first.ID())
		require.NoError(t, err)

		_, err = cmds.Accept(ctx, second.ID())
		assert.Error(t, err)

		assert.Len(t, store.products, 1)
		assert.Equal(t, offer.StatusRejected, store.offers[second.ID()].Status())
	})

	t.Run("unknown offer", func(t *testing.T) {
		store := newFakeStore()
		_, err := newOfferCommands(store).Accept(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrOfferNotFound)
	})
}
