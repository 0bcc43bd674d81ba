package handler

import "loginapi/internal/core/domain"

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse confirms a successful registration or login. The embedded user
// never carries password material (the hash is excluded at the domain level).
type authResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
