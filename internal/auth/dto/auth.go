package dto

import authdomain "noteflow-backend/internal/auth/domain"

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message string           `json:"message"`
	User    *authdomain.User `json:"user"`
	Token   string           `json:"token,omitempty"`
}

type StatusResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *authdomain.User `json:"user,omitempty"`
}
