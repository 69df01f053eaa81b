package queries

import (
	"context"
	"time"

	"marketlink/internal/domain/user"
	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errs.New("product not found")

type ProductView struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int32           `json:"quantity"`
	Location      string          `json:"location"`
	ImageURL      *string         `json:"image_url,omitempty"`
	OwnerID       uuid.UUID       `json:"owner_id"`
	OwnerUsername string          `json:"owner_username"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	// ListForRole returns only the caller's rows for sellers and the whole
	// catalog for every other role.
	ListForRole(ctx context.Context, callerID uuid.UUID, role user.Role) ([]*ProductView, error)
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindAll(ctx context.Context) ([]*ProductView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ProductView, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{readStore: readStore}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *productQueriesImpl) ListForRole(ctx context.Context, callerID uuid.UUID, role user.Role) ([]*ProductView, error) {
	if role == user.RoleSeller {
		return q.readStore.FindByOwner(ctx, callerID)
	}
	return q.readStore.FindAll(ctx)
}
