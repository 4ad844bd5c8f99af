package response_models

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}
