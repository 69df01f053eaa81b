//go:build unit

package commands_test

import (
	"context"
	"testing"

	"marketlink/internal/domain/request"
	reqdto "marketlink/internal/handler/dto/request"
	"marketlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestCommands(store *fakeStore) commands.RequestCommands {
	return commands.NewRequestCommands(&fakeUoW{store: store}, &fakeRequestQueries{store: store})
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending request with default urgency", func(t *testing.T) {
		store := newFakeStore()
		buyerID := uuid.New()

		view, err := newRequestCommands(store).Create(ctx, reqdto.CreateRequestRequest{
			ProductName: "Office Chair",
			Quantity:    5,
		}, buyerID)
		require.NoError(t, err)

		assert.Equal(t, buyerID, view.BuyerID)
		assert.Equal(t, request.StatusPending.String(), view.Status)
		assert.Equal(t, request.UrgencyMedium.String(), view.Urgency)
		assert.Len(t, store.requests, 1)
	})

	t.Run("rejects invalid urgency before touching storage", func(t *testing.T) {
		store := newFakeStore()
		_, err := newRequestCommands(store).Create(ctx, reqdto.CreateRequestRequest{
			ProductName: "Office Chair",
			Quantity:    5,
			Urgency:     "Critical",
		}, uuid.New())
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, store.requests)
	})
}

func TestBroadcastRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("moves pending to notified", func(t *testing.T) {
		store := newFakeStore()
		req, err := request.NewProductRequest(uuid.New(), "Office Chair", "", 5, request.UrgencyLow)
		require.NoError(t, err)
		store.requests[req.ID()] = req

		view, err := newRequestCommands(store).Broadcast(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, request.StatusNotified.String(), view.Status)
	})

	t.Run("rebroadcast conflicts", func(t *testing.T) {
		store := newFakeStore()
		req, err := request.NewProductRequest(uuid.New(), "Office Chair", "", 5, request.UrgencyLow)
		require.NoError(t, err)
		store.requests[req.ID()] = req
		cmds := newRequestCommands(store)

		_, err = cmds.Broadcast(ctx, req.ID())
		require.NoError(t, err)

		_, err = cmds.Broadcast(ctx, req.ID())
		assert.ErrorIs(t, err, commands.ErrRequestNotPending)
	})

	t.Run("unknown request", func(t *testing.T) {
		store := newFakeStore()
		_, err := newRequestCommands(store).Broadcast(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})
}
