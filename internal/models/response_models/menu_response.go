package response_models

type MenuItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Available   bool   `json:"available"`
}

type MenuListResponse struct {
	Items       []MenuItemView `json:"items"`
	PublicToken *string        `json:"publicToken"`
}

type RestaurantPublic struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

type PublicMenuResponse struct {
	Restaurant RestaurantPublic `json:"restaurant"`
	Menu       []MenuItemView   `json:"menu"`
}

type MenuTokenResponse struct {
	PublicToken string `json:"publicToken"`
	PublicURL   string `json:"publicUrl"`
}
