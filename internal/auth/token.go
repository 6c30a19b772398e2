package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/siga-edu/academic-service/internal/domain"
)

// ErrInvalidToken indicates a token whose signature, format or claims failed
// validation. ErrTokenExpired wraps it, so errors.Is(err, ErrInvalidToken)
// holds for expired tokens as well.
var (
	ErrInvalidToken = errors.New("token inválido")
	ErrTokenExpired = fmt.Errorf("%w: expirado", ErrInvalidToken)
)

// Token kinds embedded in the typ claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenManager issues and verifies signed bearer tokens.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a manager around the process-wide signing secret.
func NewTokenManager(secret string, accessTTLHours, refreshTTLHours int) *TokenManager {
	if accessTTLHours <= 0 {
		accessTTLHours = 24
	}
	if refreshTTLHours <= 0 {
		refreshTTLHours = 24 * 7
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  time.Duration(accessTTLHours) * time.Hour,
		refreshTTL: time.Duration(refreshTTLHours) * time.Hour,
	}
}

// Claims describes the JWT payload.
type Claims struct {
	Role      domain.UserRole `json:"role"`
	TokenType string          `json:"typ"`
	jwt.RegisteredClaims
}

// Issue signs an access token for the subject.
func (tm *TokenManager) Issue(subjectID string, role domain.UserRole) (string, time.Time, error) {
	return tm.sign(subjectID, role, TokenTypeAccess, tm.accessTTL)
}

// IssueRefresh signs the longer-lived token variant.
func (tm *TokenManager) IssueRefresh(subjectID string, role domain.UserRole) (string, time.Time, error) {
	return tm.sign(subjectID, role, TokenTypeRefresh, tm.refreshTTL)
}

func (tm *TokenManager) sign(subjectID string, role domain.UserRole, typ string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		Role:      role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify validates signature and expiry and returns the embedded claims.
// Two Verify calls on the same still-valid token yield the same subject and
// role.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefresh validates a token and requires the refresh kind.
func (tm *TokenManager) VerifyRefresh(tokenStr string) (*Claims, error) {
	claims, err := tm.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
