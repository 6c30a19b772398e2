package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/domain"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

// RequirePermission ensures the authenticated caller holds the named grant.
func RequirePermission(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("autenticação necessária")
		}
		if !identity.HasPermission(name) {
			return apperrors.NewForbidden(fmt.Sprintf("permissão necessária: %s", name))
		}
		return c.Next()
	}
}

// RequireRole restricts a route to the given account roles.
func RequireRole(allowed ...domain.UserRole) fiber.Handler {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("autenticação necessária")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden("perfil sem acesso a este recurso")
		}
		return c.Next()
	}
}
