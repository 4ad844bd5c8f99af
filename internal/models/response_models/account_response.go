package response_models

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
