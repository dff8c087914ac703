package jwt

import (
	"PantryChef/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTServiceWithSecret("test-secret")

	token := service.GenerateTokenUser("c0ffee00-0000-4000-8000-000000000001", domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "c0ffee00-0000-4000-8000-000000000001", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTServiceWithSecret("one-secret")
	verifier := NewJWTServiceWithSecret("another-secret")

	token := issuer.GenerateTokenUser("user", domain.RoleUser)

	_, _, err := verifier.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	claims := jwtUserClaim{
		UserID: "user",
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, err = NewJWTServiceWithSecret("test-secret").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, _, err := NewJWTServiceWithSecret("test-secret").GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
