//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "marketlink/internal/handler/dto/request"
	"marketlink/internal/pkg/jwt"
	"marketlink/internal/usecase/commands"
	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserReadStore struct {
	store *fakeStore
}

func (r *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, queries.ErrUserNotFound
	}
	return &queries.AuthorizedUserView{ID: u.ID(), Username: u.Username().Value(), Role: u.Role().String()}, nil
}

func (r *fakeUserReadStore) FindByUsername(_ context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	for _, u := range r.store.users {
		if u.Username().Value() == username {
			return &queries.AuthorizedUserView{ID: u.ID(), Username: username, Role: u.Role().String()}, u.PasswordHash(), nil
		}
	}
	return nil, "", queries.ErrUserNotFound
}

func newAuthCommands(store *fakeStore) commands.AuthCommands {
	svc := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommands(&fakeUoW{store: store}, &fakeUserReadStore{store: store}, svc)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for a new account", func(t *testing.T) {
		store := newFakeStore()
		result, err := newAuthCommands(store).Register(ctx, reqdto.RegisterRequest{
			Username: "alice",
			Password: "s3cret-pass",
			Role:     "seller",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "alice", result.User.Username)
		assert.Equal(t, "seller", result.User.Role)
		assert.Len(t, store.users, 1)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAuthCommands(store)

		_, err := cmds.Register(ctx, reqdto.RegisterRequest{Username: "alice", Password: "s3cret-pass", Role: "buyer"})
		require.NoError(t, err)

		_, err = cmds.Register(ctx, reqdto.RegisterRequest{Username: "alice", Password: "other-pass", Role: "seller"})
		assert.ErrorIs(t, err, commands.ErrUsernameTaken)
	})

	t.Run("unknown role fails", func(t *testing.T) {
		store := newFakeStore()
		_, err := newAuthCommands(store).Register(ctx, reqdto.RegisterRequest{Username: "alice", Password: "s3cret-pass", Role: "superuser"})
		assert.Error(t, err)
		assert.Empty(t, store.users)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials round trip through the token", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAuthCommands(store)

		registered, err := cmds.Register(ctx, reqdto.RegisterRequest{Username: "bob", Password: "s3cret-pass", Role: "buyer"})
		require.NoError(t, err)

		result, err := cmds.Login(ctx, reqdto.LoginRequest{Username: "bob", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, result.User.ID)

		claims, err := jwt.NewService("test-secret", time.Hour).ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "bob", claims.Username)
		assert.Equal(t, "buyer", claims.Role)
	})

	t.Run("wrong password and unknown user look identical", func(t *testing.T) {
		store := newFakeStore()
		cmds := newAuthCommands(store)

		_, err := cmds.Register(ctx, reqdto.RegisterRequest{Username: "bob", Password: "s3cret-pass", Role: "buyer"})
		require.NoError(t, err)

		_, wrongPass := cmds.Login(ctx, reqdto.LoginRequest{Username: "bob", Password: "nope"})
		_, unknown := cmds.Login(ctx, reqdto.LoginRequest{Username: "carol", Password: "nope"})

		assert.ErrorIs(t, wrongPass, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, commands.ErrInvalidCredentials)
	})
}
