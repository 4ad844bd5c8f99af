package response_models

type RestaurantResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone,omitempty"`
	Address          string  `json:"address,omitempty"`
	City             string  `json:"city,omitempty"`
	State            string  `json:"state,omitempty"`
	PostalCode       string  `json:"postal_code,omitempty"`
	Country          string  `json:"country"`
	PaymentAccountID *string `json:"payment_account_id,omitempty"`
	OnboardingLink   *string `json:"onboarding_link,omitempty"`
}
