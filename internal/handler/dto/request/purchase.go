package request

import "github.com/google/uuid"

type PurchaseRequest struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	Quantity        int32     `json:"quantity" binding:"required,gt=0"`
	DeliveryAddress string    `json:"delivery_address" binding:"required,max=500"`
}
