package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/siga-edu/academic-service/internal/auth"
	"github.com/siga-edu/academic-service/internal/config"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/repository"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

// AuthService coordinates the login and token refresh flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users: users,
		tokenMgr: auth.NewTokenManager(
			cfg.Auth.JWTSecret,
			cfg.Auth.AccessTokenTTLHours,
			cfg.Auth.RefreshTokenTTLHours,
		),
		dispatcher: dispatcher,
	}
}

// LoginResult carries the outcome of a successful authentication.
type LoginResult struct {
	User         *domain.User
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
}

// Login verifies credentials and issues the access and refresh tokens. An
// unknown e-mail, a wrong password and an inactive account all fail with the
// same credential error.
func (s *AuthService) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !user.Active || !auth.ComparePassword(user.PasswordHash, senha) {
		return nil, invalidCredentials()
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.tokenMgr.IssueRefresh(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventLoginSuccess,
		Resource:   "usuarios",
		ResourceID: user.ID,
		ActorID:    user.ID,
		Timestamp:  time.Now(),
	})

	return &LoginResult{User: user, Token: token, RefreshToken: refresh, ExpiresAt: exp}, nil
}

// Refresh exchanges a valid long-lived token for a fresh access token. The
// account must still exist and be active.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.tokenMgr.VerifyRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return "", time.Time{}, apperrors.NewDomainError("Token expirado", "o token expirou", http.StatusUnauthorized, nil)
		}
		return "", time.Time{}, apperrors.NewDomainError("Token inválido", "assinatura ou formato do token inválido", http.StatusUnauthorized, nil)
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, invalidCredentials()
		}
		return "", time.Time{}, err
	}
	if !user.Active {
		return "", time.Time{}, invalidCredentials()
	}

	return issueAccess(s.tokenMgr, user)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func issueAccess(tm *auth.TokenManager, user *domain.User) (string, time.Time, error) {
	return tm.Issue(user.ID, user.Role)
}

func invalidCredentials() error {
	return apperrors.NewUnauthorized("Credenciais inválidas")
}
