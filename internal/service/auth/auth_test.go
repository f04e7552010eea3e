package service_auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/humanbelnik/movierama/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	service := New("unit-secret", time.Hour)
	user := model.User{ID: 7, Email: "jane@example.com", Name: "Jane"}

	token, err := service.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, ok := service.Validate(token)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.Name)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	service := New("unit-secret", -time.Hour)
	// New falls back to the default TTL on non-positive values, so
	// build the expired token by hand.
	claims := &Claims{
		ID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	_, ok := service.Validate(token)
	assert.False(t, ok)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := New("one-secret", time.Hour)
	verifier := New("another-secret", time.Hour)

	token, err := issuer.Issue(model.User{ID: 7})
	require.NoError(t, err)

	_, ok := verifier.Validate(token)
	assert.False(t, ok)
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	service := New("unit-secret", time.Hour)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{ID: 7}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, ok := service.Validate(unsigned)
	assert.False(t, ok)
}

func TestValidateRejectsGarbage(t *testing.T) {
	service := New("unit-secret", time.Hour)

	_, ok := service.Validate("definitely-not-a-jwt")
	assert.False(t, ok)
}

func TestDefaultTTLApplied(t *testing.T) {
	service := New("unit-secret", 0)
	assert.Equal(t, defaultTokenTTL, service.ttl)
}
