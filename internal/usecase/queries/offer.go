package queries

import (
	"context"
	"time"

	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOfferNotFound = errs.New("offer not found")

type OfferView struct {
	ID             uuid.UUID       `json:"id"`
	SellerID       uuid.UUID       `json:"seller_id"`
	SellerUsername string          `json:"seller_username"`
	RequestID      uuid.UUID       `json:"request_id"`
	Quantity       int32           `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Message        string          `json:"message,omitempty"`
	Location       string          `json:"location"`
	ImageURL       *string         `json:"image_url,omitempty"`
	Status         string          `json:"status"`
	OfferedAt      time.Time       `json:"offered_at"`
}

// SellerOfferDetail is an offer joined with its originating request for the
// seller's own listing.
type SellerOfferDetail struct {
	OfferView
	RequestProductName string `json:"request_product_name"`
	RequestStatus      string `json:"request_status"`
}

type OfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	ListForRequest(ctx context.Context, requestID uuid.UUID) ([]*OfferView, error)
	// ListRequestIDsBySeller returns just the request ids the seller has
	// offered on; the seller request list uses it to mark offered rows.
	ListRequestIDsBySeller(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*SellerOfferDetail, error)
}

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*OfferView, error)
	FindRequestIDsBySeller(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error)
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*SellerOfferDetail, error)
}

type offerQueriesImpl struct {
	readStore OfferReadStore
}

func NewOfferQueries(readStore OfferReadStore) OfferQueries {
	return &offerQueriesImpl{readStore: readStore}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *offerQueriesImpl) ListForRequest(ctx context.Context, requestID uuid.UUID) ([]*OfferView, error) {
	return q.readStore.FindByRequest(ctx, requestID)
}

func (q *offerQueriesImpl) ListRequestIDsBySeller(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error) {
	return q.readStore.FindRequestIDsBySeller(ctx, sellerID)
}

func (q *offerQueriesImpl) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*SellerOfferDetail, error) {
	return q.readStore.FindBySeller(ctx, sellerID)
}
