package queries

import (
	"context"
	"time"

	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrRequestNotFound = errs.New("product request not found")

type RequestView struct {
	ID              uuid.UUID  `json:"id"`
	BuyerID         uuid.UUID  `json:"buyer_id"`
	BuyerUsername   string     `json:"buyer_username"`
	ProductName     string     `json:"product_name"`
	Description     string     `json:"description"`
	Quantity        int32      `json:"quantity"`
	Urgency         string     `json:"urgency"`
	Status          string     `json:"status"`
	AcceptedOfferID *uuid.UUID `json:"accepted_offer_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AcceptedOfferView is the winning offer joined into a buyer's own request
// listing, including the seller's identity.
type AcceptedOfferView struct {
	OfferID        uuid.UUID       `json:"offer_id"`
	SellerUsername string          `json:"seller_username"`
	Quantity       int32           `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Location       string          `json:"location"`
}

type BuyerRequestView struct {
	RequestView
	AcceptedOffer *AcceptedOfferView `json:"accepted_offer,omitempty"`
}

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListAll(ctx context.Context) ([]*RequestView, error)
	ListNotified(ctx context.Context) ([]*RequestView, error)
	ListMine(ctx context.Context, buyerID uuid.UUID) ([]*BuyerRequestView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindAll(ctx context.Context) ([]*RequestView, error)
	FindByStatus(ctx context.Context, status string) ([]*RequestView, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*BuyerRequestView, error)
}

type requestQueriesImpl struct {
	readStore RequestReadStore
}

func NewRequestQueries(readStore RequestReadStore) RequestQueries {
	return &requestQueriesImpl{readStore: readStore}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListAll(ctx context.Context) ([]*RequestView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *requestQueriesImpl) ListNotified(ctx context.Context) ([]*RequestView, error) {
	return q.readStore.FindByStatus(ctx, "Notified")
}

func (q *requestQueriesImpl) ListMine(ctx context.Context, buyerID uuid.UUID) ([]*BuyerRequestView, error) {
	return q.readStore.FindByBuyer(ctx, buyerID)
}
