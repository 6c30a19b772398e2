package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/siga-edu/academic-service/internal/auth"
	"github.com/siga-edu/academic-service/internal/config"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/repository"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byEmail: map[string]*domain.User{}, byID: map[string]*domain.User{}}
	for _, u := range users {
		r.byEmail[u.Email] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.byID[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(r.byEmail, user.Email)
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) WithTx(_ repository.DBTX) repository.UserRepository {
	return r
}

func testConfig() config.Config {
	return config.Config{Auth: config.AuthConfig{
		JWTSecret:            "test-secret",
		AccessTokenTTLHours:  1,
		RefreshTokenTTLHours: 24,
		BcryptCost:           4,
	}}
}

func testUser(t *testing.T, email, senha string, active bool) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(senha, 4)
	require.NoError(t, err)
	return &domain.User{
		ID:           "user-1",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleProfessor,
		Active:       active,
	}
}

func requireCredentialError(t *testing.T, err error) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, 401, domainErr.HTTPStatus)
	require.Equal(t, "Credenciais inválidas", domainErr.Message)
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "ana@escola.edu.br", "senha-forte", true)
	svc := NewAuthService(testConfig(), newStubUserRepo(user), events.NewInMemoryDispatcher())

	result, err := svc.Login(context.Background(), "ana@escola.edu.br", "senha-forte")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.NotEmpty(t, result.RefreshToken)
	require.Equal(t, user.ID, result.User.ID)

	claims, err := svc.TokenManager().Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, domain.RoleProfessor, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "ana@escola.edu.br", "senha-forte", true)
	svc := NewAuthService(testConfig(), newStubUserRepo(user), events.NewInMemoryDispatcher())

	_, err := svc.Login(context.Background(), "ana@escola.edu.br", "senha-errada")
	requireCredentialError(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(testConfig(), newStubUserRepo(), events.NewInMemoryDispatcher())

	_, err := svc.Login(context.Background(), "ninguem@escola.edu.br", "qualquer")
	requireCredentialError(t, err)
}

func TestLoginInactiveAccount(t *testing.T) {
	user := testUser(t, "ana@escola.edu.br", "senha-forte", false)
	svc := NewAuthService(testConfig(), newStubUserRepo(user), events.NewInMemoryDispatcher())

	_, err := svc.Login(context.Background(), "ana@escola.edu.br", "senha-forte")
	requireCredentialError(t, err)
}

func TestRefresh(t *testing.T) {
	user := testUser(t, "ana@escola.edu.br", "senha-forte", true)
	repo := newStubUserRepo(user)
	svc := NewAuthService(testConfig(), repo, events.NewInMemoryDispatcher())

	result, err := svc.Login(context.Background(), "ana@escola.edu.br", "senha-forte")
	require.NoError(t, err)

	token, _, err := svc.Refresh(context.Background(), result.RefreshToken)
	require.NoError(t, err)
	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)

	// An access token cannot be exchanged.
	_, _, err = svc.Refresh(context.Background(), result.Token)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, 401, domainErr.HTTPStatus)
	require.Equal(t, "Token inválido", domainErr.Code)
}

func TestRefreshDeactivatedAccount(t *testing.T) {
	user := testUser(t, "ana@escola.edu.br", "senha-forte", true)
	repo := newStubUserRepo(user)
	svc := NewAuthService(testConfig(), repo, events.NewInMemoryDispatcher())

	result, err := svc.Login(context.Background(), "ana@escola.edu.br", "senha-forte")
	require.NoError(t, err)

	user.Active = false
	_, _, err = svc.Refresh(context.Background(), result.RefreshToken)
	requireCredentialError(t, err)
}
