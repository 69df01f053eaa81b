package request

type CreateRequestRequest struct {
	ProductName string `json:"product_name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Quantity    int32  `json:"quantity" binding:"required,gt=0"`
	Urgency     string `json:"urgency" binding:"omitempty,oneof=Low Medium High"`
}
