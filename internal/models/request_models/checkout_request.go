package request_models

type AuthenticatedCheckoutRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	RestaurantID string `json:"restaurantId" binding:"required"`
}

type PublicCheckoutItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"unitPrice"`
	Quantity int64  `json:"quantity"`
}

type PublicCheckoutRequest struct {
	RestaurantID string               `json:"restaurantId"`
	Items        []PublicCheckoutItem `json:"items"`
}
