package dto

import (
	"time"

	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// LoginRequest payload for POST /auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Validate applies the login schema.
func (r *LoginRequest) Validate() error {
	var v validate.Violations
	v.Required("email", r.Email)
	v.Email("email", r.Email)
	v.Required("senha", r.Senha)
	return v.Err()
}

// RefreshRequest payload for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Validate applies the refresh schema.
func (r *RefreshRequest) Validate() error {
	var v validate.Violations
	v.Required("refresh_token", r.RefreshToken)
	return v.Err()
}

// AuthResponse carries issued tokens and, on login, the account summary.
type AuthResponse struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time     `json:"expires_at"`
	Usuario      *UserResponse `json:"usuario,omitempty"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Tipo  domain.UserRole `json:"tipo"`
	Ativo bool            `json:"ativo"`
}

// NewUserResponse maps a domain user, never exposing the password hash.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Tipo: u.Role, Ativo: u.Active}
}
