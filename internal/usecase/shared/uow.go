package shared

import (
	"context"

	"marketlink/internal/domain/offer"
	"marketlink/internal/domain/order"
	"marketlink/internal/domain/product"
	"marketlink/internal/domain/request"
	"marketlink/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside a single database transaction. The
// request/offer acceptance and the purchase flows depend on this: their
// multi-record writes commit together or not at all.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Requests() RequestRepository
	Offers() OfferRepository
	Products() ProductRepository
	Orders() OrderRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}

type RequestRepository interface {
	Create(ctx context.Context, req *request.ProductRequest) error
	// FindByIDForUpdate locks the row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*request.ProductRequest, error)
	// UpdateStatus transitions status only when the stored status still
	// matches from; returns the number of rows moved.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to request.Status) (int64, error)
	// Fulfill marks the request fulfilled and records the winning offer,
	// guarded on the Notified status and an unset accepted offer.
	Fulfill(ctx context.Context, id, offerID uuid.UUID) (int64, error)
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.SellerOffer) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.SellerOffer, error)
	ExistsForSellerAndRequest(ctx context.Context, sellerID, requestID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to offer.Status) (int64, error)
	// RejectPendingSiblings rejects every still-pending offer on the request
	// except the kept one; already settled siblings are untouched.
	RejectPendingSiblings(ctx context.Context, requestID, keepID uuid.UUID) (int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, item *product.CatalogItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*product.CatalogItem, error)
	Update(ctx context.Context, item *product.CatalogItem) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// DecrementStock subtracts qty only while enough stock remains; a zero
	// row count means insufficient stock (or a missing item).
	DecrementStock(ctx context.Context, id uuid.UUID, qty int32) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
}
