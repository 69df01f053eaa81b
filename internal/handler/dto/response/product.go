package response

import (
	"time"

	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Quantity      int32     `json:"quantity"`
	Location      string    `json:"location"`
	ImageURL      *string   `json:"image_url,omitempty"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:            v.ID,
		Name:          v.Name,
		Price:         v.Price.InexactFloat64(),
		Quantity:      v.Quantity,
		Location:      v.Location,
		ImageURL:      v.ImageURL,
		OwnerID:       v.OwnerID,
		OwnerUsername: v.OwnerUsername,
		CreatedAt:     v.CreatedAt,
	}
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromProductView(v))
	}
	return out
}
