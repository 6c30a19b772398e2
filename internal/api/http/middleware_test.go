package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/siga-edu/academic-service/internal/api/http/handlers"
	"github.com/siga-edu/academic-service/internal/auth"
	"github.com/siga-edu/academic-service/internal/config"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/repository"
	"github.com/siga-edu/academic-service/internal/service"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

type singleUserRepo struct {
	user *domain.User
}

func (r *singleUserRepo) Create(context.Context, *domain.User) error { return nil }
func (r *singleUserRepo) Update(context.Context, *domain.User) error { return nil }
func (r *singleUserRepo) Delete(context.Context, string) error       { return nil }

func (r *singleUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *singleUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *singleUserRepo) List(context.Context, int, int) ([]domain.User, error) { return nil, nil }

func (r *singleUserRepo) WithTx(repository.DBTX) repository.UserRepository { return r }

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := auth.HashPassword("senha-forte", 4)
	require.NoError(t, err)
	repo := &singleUserRepo{user: &domain.User{
		ID:           "user-1",
		Email:        "ana@escola.edu.br",
		PasswordHash: hash,
		Role:         domain.RoleFuncionario,
		Active:       true,
	}}

	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "s", AccessTokenTTLHours: 1, RefreshTokenTTLHours: 24}}
	authService := service.NewAuthService(cfg, repo, events.NewInMemoryDispatcher())

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 0, false)
	handler := handlers.NewAuthHandler(authService)
	app.Post("/auth/login", handler.Login)
	app.Post("/auth/refresh", handler.Refresh)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestLoginEndpointSuccess(t *testing.T) {
	app := newLoginApp(t)

	resp, body := postJSON(t, app, "/auth/login", fiber.Map{
		"email": "ana@escola.edu.br",
		"senha": "senha-forte",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["token"])
	require.NotEmpty(t, body["refresh_token"])

	usuario, ok := body["usuario"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ana@escola.edu.br", usuario["email"])
	require.NotContains(t, usuario, "senha")
	require.NotContains(t, usuario, "password_hash")
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	app := newLoginApp(t)

	resp, body := postJSON(t, app, "/auth/login", fiber.Map{
		"email": "ana@escola.edu.br",
		"senha": "senha-errada",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, float64(http.StatusUnauthorized), body["statusCode"])
	require.Equal(t, "Credenciais inválidas", body["message"])
	require.Equal(t, "/auth/login", body["path"])
	require.NotEmpty(t, body["timestamp"])
}

func TestLoginEndpointValidationEnvelope(t *testing.T) {
	app := newLoginApp(t)

	resp, body := postJSON(t, app, "/auth/login", fiber.Map{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, float64(http.StatusBadRequest), body["statusCode"])

	details, ok := body["details"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, details)
}

func TestLoginEndpointRejectsUnknownFields(t *testing.T) {
	app := newLoginApp(t)

	resp, body := postJSON(t, app, "/auth/login", fiber.Map{
		"email":  "ana@escola.edu.br",
		"senha":  "senha-forte",
		"extras": true,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, float64(http.StatusBadRequest), body["statusCode"])
}

func TestRequestLogCarriesMappedStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), nil, 0, false)
	app.Get("/cursos/:id", func(*fiber.Ctx) error {
		return apperrors.NewNotFound("curso")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/cursos/nope", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
}

func TestRequestTimeoutReaches408(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 20*time.Millisecond, false)
	app.Get("/lenta", func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return c.SendString("ok")
		}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/lenta", nil), 2000)
	require.NoError(t, err)
	require.Equal(t, http.StatusRequestTimeout, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, float64(http.StatusRequestTimeout), body["statusCode"])
}

func TestErrorEnvelopeOnPanic(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 0, false)
	app.Get("/boom", func(*fiber.Ctx) error {
		panic("unexpected")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "erro interno do servidor", body["message"])
	require.NotContains(t, body, "debug")
}

func TestErrorEnvelopeHidesCauseOutsideDevelopment(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 0, false)
	app.Get("/fail", func(*fiber.Ctx) error {
		return apperrors.NewInternalError(pgx.ErrTxClosed)
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotContains(t, body, "debug")

	devApp := fiber.New()
	RegisterMiddlewares(devApp, zap.NewNop(), nil, 0, true)
	devApp.Get("/fail", func(*fiber.Ctx) error {
		return apperrors.NewInternalError(pgx.ErrTxClosed)
	})

	resp, err = devApp.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	var devBody map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&devBody))
	require.Contains(t, devBody, "debug")
}
