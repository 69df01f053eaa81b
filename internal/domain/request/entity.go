package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName   = errors.New("product name is required")
	ErrNonPositiveQty     = errors.New("quantity must be positive")
	ErrInvalidUrgency     = errors.New("invalid urgency")
	ErrNotPending         = errors.New("request is not pending")
	ErrNotNotified        = errors.New("request is not notified")
	ErrAlreadyHasAccepted = errors.New("request already has an accepted offer")
)

// ProductRequest is a buyer's demand record. Status only ever advances
// Pending -> Notified -> Fulfilled; the transitions below are the sole way
// to move it.
type ProductRequest struct {
	id              uuid.UUID
	buyerID         uuid.UUID
	productName     string
	description     string
	quantity        int32
	urgency         Urgency
	status          Status
	acceptedOfferID *uuid.UUID
	createdAt       time.Time
}

func NewProductRequest(buyerID uuid.UUID, productName, description string, quantity int32, urgency Urgency) (*ProductRequest, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, ErrEmptyProductName
	}
	if quantity <= 0 {
		return nil, ErrNonPositiveQty
	}
	if !urgency.IsValid() {
		return nil, ErrInvalidUrgency
	}

	return &ProductRequest{
		id:          uuid.New(),
		buyerID:     buyerID,
		productName: productName,
		description: description,
		quantity:    quantity,
		urgency:     urgency,
		status:      StatusPending,
	}, nil
}

func ReconstructProductRequest(
	id, buyerID uuid.UUID,
	productName, description string,
	quantity int32,
	urgency Urgency,
	status Status,
	acceptedOfferID *uuid.UUID,
	createdAt time.Time,
) *ProductRequest {
	return &ProductRequest{
		id:              id,
		buyerID:         buyerID,
		productName:     productName,
		description:     description,
		quantity:        quantity,
		urgency:         urgency,
		status:          status,
		acceptedOfferID: acceptedOfferID,
		createdAt:       createdAt,
	}
}

// Broadcast makes the request visible to sellers. Valid only from Pending;
// re-broadcasting fails loudly rather than silently succeeding.
func (r *ProductRequest) Broadcast() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusNotified
	return nil
}

// Fulfill records the winning offer. Valid only from Notified, and the
// accepted offer reference is set exactly once, here.
func (r *ProductRequest) Fulfill(offerID uuid.UUID) error {
	if r.status != StatusNotified {
		return ErrNotNotified
	}
	if r.acceptedOfferID != nil {
		return ErrAlreadyHasAccepted
	}
	r.status = StatusFulfilled
	r.acceptedOfferID = &offerID
	return nil
}

func (r *ProductRequest) AcceptsOffers() bool {
	return r.status == StatusNotified
}

func (r *ProductRequest) ID() uuid.UUID               { return r.id }
func (r *ProductRequest) BuyerID() uuid.UUID          { return r.buyerID }
func (r *ProductRequest) ProductName() string         { return r.productName }
func (r *ProductRequest) Description() string         { return r.description }
func (r *ProductRequest) Quantity() int32             { return r.quantity }
func (r *ProductRequest) Urgency() Urgency            { return r.urgency }
func (r *ProductRequest) Status() Status              { return r.status }
func (r *ProductRequest) AcceptedOfferID() *uuid.UUID { return r.acceptedOfferID }
func (r *ProductRequest) CreatedAt() time.Time        { return r.createdAt }
