package offer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveQty   = errors.New("offer quantity must be positive")
	ErrNonPositivePrice = errors.New("offer price must be positive")
	ErrEmptyLocation    = errors.New("offer location is required")
	ErrNotPending       = errors.New("offer is not pending")
)

// SellerOffer is a seller's proposed fulfillment terms against a single
// product request. At most one offer may exist per (seller, request) pair
// and at most one offer per request may ever be accepted; both are enforced
// at the persistence boundary, the entity only guards its own transitions.
type SellerOffer struct {
	id        uuid.UUID
	sellerID  uuid.UUID
	requestID uuid.UUID
	quantity  int32
	price     decimal.Decimal
	message   string
	location  string
	imageURL  *string
	status    Status
	offeredAt time.Time
}

func NewSellerOffer(sellerID, requestID uuid.UUID, quantity int32, price decimal.Decimal, message, location string, imageURL *string) (*SellerOffer, error) {
	if quantity <= 0 {
		return nil, ErrNonPositiveQty
	}
	if !price.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	return &SellerOffer{
		id:        uuid.New(),
		sellerID:  sellerID,
		requestID: requestID,
		quantity:  quantity,
		price:     price,
		message:   message,
		location:  location,
		imageURL:  imageURL,
		status:    StatusPending,
	}, nil
}

func ReconstructSellerOffer(
	id, sellerID, requestID uuid.UUID,
	quantity int32,
	price decimal.Decimal,
	message, location string,
	imageURL *string,
	status Status,
	offeredAt time.Time,
) *SellerOffer {
	return &SellerOffer{
		id:        id,
		sellerID:  sellerID,
		requestID: requestID,
		quantity:  quantity,
		price:     price,
		message:   message,
		location:  location,
		imageURL:  imageURL,
		status:    status,
		offeredAt: offeredAt,
	}
}

func (o *SellerOffer) Accept() error {
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = StatusAccepted
	return nil
}

func (o *SellerOffer) Reject() error {
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = StatusRejected
	return nil
}

func (o *SellerOffer) ID() uuid.UUID          { return o.id }
func (o *SellerOffer) SellerID() uuid.UUID    { return o.sellerID }
func (o *SellerOffer) RequestID() uuid.UUID   { return o.requestID }
func (o *SellerOffer) Quantity() int32        { return o.quantity }
func (o *SellerOffer) Price() decimal.Decimal { return o.price }
func (o *SellerOffer) Message() string        { return o.message }
func (o *SellerOffer) Location() string       { return o.location }
func (o *SellerOffer) ImageURL() *string      { return o.imageURL }
func (o *SellerOffer) Status() Status         { return o.status }
func (o *SellerOffer) OfferedAt() time.Time   { return o.offeredAt }
