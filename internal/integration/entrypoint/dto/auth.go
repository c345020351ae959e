package dto

// RegisterRequest represents the request body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse represents the response body for POST /auth/register.
type RegisterResponse struct {
	Email string `json:"email"`
}

// LoginRequest represents the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for POST /auth/login.
type LoginResponse struct {
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}
