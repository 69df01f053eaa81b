package response

import (
	"time"

	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID              uuid.UUID  `json:"id"`
	BuyerID         uuid.UUID  `json:"buyer_id"`
	BuyerUsername   string     `json:"buyer_username"`
	ProductName     string     `json:"product_name"`
	Description     string     `json:"description,omitempty"`
	Quantity        int32      `json:"quantity"`
	Urgency         string     `json:"urgency"`
	Status          string     `json:"status"`
	AcceptedOfferID *uuid.UUID `json:"accepted_offer_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type AcceptedOfferResponse struct {
	OfferID        uuid.UUID `json:"offer_id"`
	SellerUsername string    `json:"seller_username"`
	Quantity       int32     `json:"quantity"`
	Price          float64   `json:"price"`
	Location       string    `json:"location"`
}

// BuyerRequestResponse is the buyer's own request row, carrying the winning
// offer once one has been accepted.
type BuyerRequestResponse struct {
	RequestResponse
	AcceptedOffer *AcceptedOfferResponse `json:"accepted_offer,omitempty"`
}

// SellerRequestResponse marks the rows the seller has already offered on.
type SellerRequestResponse struct {
	RequestResponse
	AlreadyOffered bool `json:"already_offered"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:              v.ID,
		BuyerID:         v.BuyerID,
		BuyerUsername:   v.BuyerUsername,
		ProductName:     v.ProductName,
		Description:     v.Description,
		Quantity:        v.Quantity,
		Urgency:         v.Urgency,
		Status:          v.Status,
		AcceptedOfferID: v.AcceptedOfferID,
		CreatedAt:       v.CreatedAt,
	}
}

func FromRequestViews(views []*queries.RequestView) []*RequestResponse {
	out := make([]*RequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromRequestView(v))
	}
	return out
}

func FromBuyerRequestView(v *queries.BuyerRequestView) *BuyerRequestResponse {
	resp := &BuyerRequestResponse{RequestResponse: *FromRequestView(&v.RequestView)}
	if v.AcceptedOffer != nil {
		resp.AcceptedOffer = &AcceptedOfferResponse{
			OfferID:        v.AcceptedOffer.OfferID,
			SellerUsername: v.AcceptedOffer.SellerUsername,
			Quantity:       v.AcceptedOffer.Quantity,
			Price:          v.AcceptedOffer.Price.InexactFloat64(),
			Location:       v.AcceptedOffer.Location,
		}
	}
	return resp
}

func FromBuyerRequestViews(views []*queries.BuyerRequestView) []*BuyerRequestResponse {
	out := make([]*BuyerRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBuyerRequestView(v))
	}
	return out
}

func FromSellerRequestViews(views []*queries.RequestView, offeredRequestIDs []uuid.UUID) []*SellerRequestResponse {
	offered := make(map[uuid.UUID]struct{}, len(offeredRequestIDs))
	for _, id := range offeredRequestIDs {
		offered[id] = struct{}{}
	}

	out := make([]*SellerRequestResponse, 0, len(views))
	for _, v := range views {
		_, has := offered[v.ID]
		out = append(out, &SellerRequestResponse{
			RequestResponse: *FromRequestView(v),
			AlreadyOffered:  has,
		})
	}
	return out
}
