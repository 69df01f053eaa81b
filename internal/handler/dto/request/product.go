package request

type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,max=200"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int32   `json:"quantity" binding:"gte=0"`
	Location string  `json:"location" binding:"required,max=200"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
}

type UpdateProductRequest struct {
	Name     string  `json:"name" binding:"required,max=200"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int32   `json:"quantity" binding:"gte=0"`
	Location string  `json:"location" binding:"required,max=200"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
}
