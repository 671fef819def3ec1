package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("user-123", "alice@example.com")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, issuerName, claims.Issuer)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("user-123", "alice@example.com")
	require.NoError(t, err)

	other := NewTokenManager("other-secret", time.Hour)
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenRejectsForeignIssuer(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	// A token signed with the shared secret but minted by another service
	// does not carry our issuer and must not validate.
	claims := Claims{
		UserID: "user-123",
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "some-other-service",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Validate(foreign)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate("user-123", "alice@example.com")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}
