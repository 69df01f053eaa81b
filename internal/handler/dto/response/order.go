package response

import (
	"time"

	"marketlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	OrderID         uuid.UUID `json:"order_id"`
	ProductName     string    `json:"product_name"`
	UnitPrice       float64   `json:"unit_price"`
	Quantity        int32     `json:"quantity"`
	TotalPrice      float64   `json:"total_price"`
	DeliveryAddress string    `json:"delivery_address"`
	PurchasedAt     time.Time `json:"purchased_at"`
}

type InvoiceResponse struct {
	InvoiceID       uuid.UUID `json:"invoice_id"`
	Buyer           string    `json:"buyer"`
	ProductName     string    `json:"product_name"`
	UnitPrice       float64   `json:"unit_price"`
	Quantity        int32     `json:"quantity"`
	TotalPrice      float64   `json:"total_price"`
	DeliveryAddress string    `json:"delivery_address"`
	PurchasedAt     time.Time `json:"purchased_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		OrderID:         v.OrderID,
		ProductName:     v.ProductName,
		UnitPrice:       v.UnitPrice.InexactFloat64(),
		Quantity:        v.Quantity,
		TotalPrice:      v.TotalPrice.InexactFloat64(),
		DeliveryAddress: v.DeliveryAddress,
		PurchasedAt:     v.PurchasedAt,
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		InvoiceID:       v.InvoiceID,
		Buyer:           v.BuyerUsername,
		ProductName:     v.ProductName,
		UnitPrice:       v.UnitPrice.InexactFloat64(),
		Quantity:        v.Quantity,
		TotalPrice:      v.TotalPrice.InexactFloat64(),
		DeliveryAddress: v.DeliveryAddress,
		PurchasedAt:     v.PurchasedAt,
	}
}
