package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/siga-edu/academic-service/internal/domain"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

type stubPermissions struct {
	names []string
	err   error
}

func (s *stubPermissions) ListUserPermissions(_ context.Context, _ string) ([]string, error) {
	return s.names, s.err
}

func newProtectedApp(tm *TokenManager, perms PermissionSource) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})
	mw := NewAuthMiddleware(tm, perms)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"user_id": identity.UserID, "permissions": identity.Permissions})
	})
	return app
}

func TestHandleMissingHeader(t *testing.T) {
	app := newProtectedApp(NewTokenManager("s", 1, 24), &stubPermissions{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), "Token não fornecido")
}

func TestHandleInvalidToken(t *testing.T) {
	app := newProtectedApp(NewTokenManager("s", 1, 24), &stubPermissions{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), "Token inválido")
}

func TestHandleExpiredToken(t *testing.T) {
	app := newProtectedApp(NewTokenManager("s", 1, 24), &stubPermissions{})

	claims := &Claims{
		Role:      domain.RoleProfessor,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), "Token expirado")
}

func TestHandleValidToken(t *testing.T) {
	tm := NewTokenManager("s", 1, 24)
	app := newProtectedApp(tm, &stubPermissions{names: []string{"cursos.gerenciar"}})

	token, _, err := tm.Issue("user-1", domain.RoleProfessor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), "user-1")
	require.Contains(t, string(body), "cursos.gerenciar")
}

func TestHandlePermissionLookupFailure(t *testing.T) {
	tm := NewTokenManager("s", 1, 24)
	app := newProtectedApp(tm, &stubPermissions{err: errors.New("store down")})

	token, _, err := tm.Issue("user-1", domain.RoleProfessor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRequirePermission(t *testing.T) {
	tm := NewTokenManager("s", 1, 24)
	perms := &stubPermissions{names: []string{"professores.listar"}}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).SendString(domainErr.Code)
		},
	})
	mw := NewAuthMiddleware(tm, perms)
	app.Get("/allowed", mw.Handle, RequirePermission("professores.listar"), okHandler)
	app.Get("/denied", mw.Handle, RequirePermission("usuarios.gerenciar"), okHandler)

	token, _, err := tm.Issue("user-1", domain.RoleProfessor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/allowed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/denied", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func okHandler(c *fiber.Ctx) error {
	return c.SendString("ok")
}
