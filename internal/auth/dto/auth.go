package dto

// LoginRequest carries the externally issued identity-provider token
type LoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// TokenResponse carries the session token this service issues in exchange
type TokenResponse struct {
	Token string `json:"token"`
}
