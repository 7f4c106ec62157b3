package models

type OrderItemRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type CreateOrderRequest struct {
	Email string             `json:"email" binding:"required,email"`
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

type ProcessPaymentRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	PIN   string `json:"pin" binding:"required,min=4"`
}
