package request

type SubmitOfferRequest struct {
	Quantity int32   `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Message  string  `json:"message" binding:"max=2000"`
	Location string  `json:"location" binding:"required,max=200"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
}
