package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/siga-edu/academic-service/internal/domain"
)

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", 1, 24)

	token, expiresAt, err := tm.Issue("user-1", domain.RoleProfessor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, domain.RoleProfessor, claims.Role)
	require.Equal(t, TokenTypeAccess, claims.TokenType)

	// Verification does not consume the token.
	again, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, again.Subject)
	require.Equal(t, claims.Role, again.Role)
}

func TestVerifyExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 1, 24)

	claims := &Claims{
		Role:      domain.RoleFuncionario,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	require.ErrorIs(t, err, ErrTokenExpired)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", 1, 24)
	other := NewTokenManager("other-secret", 1, 24)

	token, _, err := other.Issue("user-1", domain.RoleProfessor)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongMethod(t *testing.T) {
	tm := NewTokenManager("test-secret", 1, 24)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefresh(t *testing.T) {
	tm := NewTokenManager("test-secret", 1, 24)

	access, _, err := tm.Issue("user-1", domain.RoleProfessor)
	require.NoError(t, err)
	refresh, _, err := tm.IssueRefresh("user-1", domain.RoleProfessor)
	require.NoError(t, err)

	_, err = tm.VerifyRefresh(access)
	require.ErrorIs(t, err, ErrInvalidToken)

	claims, err := tm.VerifyRefresh(refresh)
	require.NoError(t, err)
	require.Equal(t, TokenTypeRefresh, claims.TokenType)
}
