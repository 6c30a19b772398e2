package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/service"
)

// AuthHandler exposes the login and refresh endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	result, err := h.service.Login(c.UserContext(), req.Email, req.Senha)
	if err != nil {
		return err
	}
	usuario := dto.NewUserResponse(result.User)
	return c.JSON(dto.AuthResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    result.ExpiresAt,
		Usuario:      &usuario,
	})
}

// Refresh POST /auth/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	token, expiresAt, err := h.service.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: expiresAt})
}
