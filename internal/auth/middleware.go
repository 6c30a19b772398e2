package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/domain"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

const identityKey = "auth_identity"

// PermissionSource resolves the permission names granted to a user.
type PermissionSource interface {
	ListUserPermissions(ctx context.Context, userID string) ([]string, error)
}

// AuthMiddleware validates bearer tokens and attaches the caller identity.
type AuthMiddleware struct {
	tokens      *TokenManager
	permissions PermissionSource
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, permissions PermissionSource) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, permissions: permissions}
}

// Handle enforces authentication for protected routes. A failed verification
// terminates the request before any handler runs; a permission-store failure
// is a 500, not a 401.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if strings.TrimSpace(authHeader) == "" {
		return apperrors.NewDomainError("Token não fornecido", "cabeçalho Authorization ausente", http.StatusUnauthorized, nil)
	}

	parts := strings.Fields(authHeader)
	token := parts[len(parts)-1]
	if len(parts) == 2 && !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewDomainError("Token inválido", "esquema de autorização não suportado", http.StatusUnauthorized, nil)
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewDomainError("Token expirado", "o token expirou", http.StatusUnauthorized, nil)
		}
		return apperrors.NewDomainError("Token inválido", "assinatura ou formato do token inválido", http.StatusUnauthorized, nil)
	}

	perms, err := m.permissions.ListUserPermissions(c.UserContext(), claims.Subject)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("load permissions: %w", err))
	}

	// Additive: never overwrite an identity attached earlier in the chain.
	if c.Locals(identityKey) == nil {
		c.Locals(identityKey, &domain.Identity{
			UserID:      claims.Subject,
			Role:        claims.Role,
			Permissions: perms,
		})
	}
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}
