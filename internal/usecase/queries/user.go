package queries

import (
	"context"

	"github.com/google/uuid"

	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByUsername(ctx context.Context, username string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
