package response

import (
	"time"

	"marketlink/internal/usecase/commands"
	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID             uuid.UUID `json:"id"`
	SellerID       uuid.UUID `json:"seller_id"`
	SellerUsername string    `json:"seller_username"`
	RequestID      uuid.UUID `json:"request_id"`
	Quantity       int32     `json:"quantity"`
	Price          float64   `json:"price"`
	Message        string    `json:"message,omitempty"`
	Location       string    `json:"location"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Status         string    `json:"status"`
	OfferedAt      time.Time `json:"offered_at"`
}

type SellerOfferResponse struct {
	OfferResponse
	RequestProductName string `json:"request_product_name"`
	RequestStatus      string `json:"request_status"`
}

type AcceptOfferResponse struct {
	OfferID          uuid.UUID `json:"offer_id"`
	RequestID        uuid.UUID `json:"request_id"`
	ProductID        uuid.UUID `json:"product_id"`
	RejectedSiblings int64     `json:"rejected_offers"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	return &OfferResponse{
		ID:             v.ID,
		SellerID:       v.SellerID,
		SellerUsername: v.SellerUsername,
		RequestID:      v.RequestID,
		Quantity:       v.Quantity,
		Price:          v.Price.InexactFloat64(),
		Message:        v.Message,
		Location:       v.Location,
		ImageURL:       v.ImageURL,
		Status:         v.Status,
		OfferedAt:      v.OfferedAt,
	}
}

func FromOfferViews(views []*queries.OfferView) []*OfferResponse {
	out := make([]*OfferResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOfferView(v))
	}
	return out
}

func FromSellerOfferDetail(v *queries.SellerOfferDetail) *SellerOfferResponse {
	return &SellerOfferResponse{
		OfferResponse:      *FromOfferView(&v.OfferView),
		RequestProductName: v.RequestProductName,
		RequestStatus:      v.RequestStatus,
	}
}

func FromSellerOfferDetails(views []*queries.SellerOfferDetail) []*SellerOfferResponse {
	out := make([]*SellerOfferResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSellerOfferDetail(v))
	}
	return out
}

func FromAcceptOfferResult(r *commands.AcceptOfferResult) *AcceptOfferResponse {
	return &AcceptOfferResponse{
		OfferID:          r.OfferID,
		RequestID:        r.RequestID,
		ProductID:        r.ProductID,
		RejectedSiblings: r.RejectedSiblings,
	}
}
