package model

// LoginRequest represents login parameters
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
