package auth

import (
	"github.com/edutorres-dev/BellaVitta/internal/customers"
)

// RegisterInput carries the storefront signup payload.
type RegisterInput struct {
	Name     string `json:"nome" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Contact  string `json:"contato" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginInput carries the login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// Session is what a successful login or refresh returns.
type Session struct {
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
	Customer     customers.PublicProfile `json:"cliente"`
}

// UpdateContactInput changes the customer's WhatsApp number.
type UpdateContactInput struct {
	Contact string `json:"contato" validate:"required"`
}

// UpdatePasswordInput rotates the customer's password.
type UpdatePasswordInput struct {
	Current string `json:"senha_atual" validate:"required"`
	New     string `json:"senha_nova" validate:"required"`
}
