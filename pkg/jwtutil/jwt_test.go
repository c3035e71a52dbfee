package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	j := NewJWTUtil(&JWTConfig{SigningKey: "secret", ExpirationHours: 1})

	token, expiresAt, err := j.GenerateToken("sess-1", "42", "loja@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "loja@example.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateToken_WrongKey(t *testing.T) {
	issuer := NewJWTUtil(&JWTConfig{SigningKey: "secret", ExpirationHours: 1})
	other := NewJWTUtil(&JWTConfig{SigningKey: "other", ExpirationHours: 1})

	token, _, err := issuer.GenerateToken("sess-1", "42", "a@b.c")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	j := NewJWTUtil(&JWTConfig{SigningKey: "secret", ExpirationHours: 1})
	j.nowF = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := j.GenerateToken("sess-1", "42", "a@b.c")
	require.NoError(t, err)

	_, err = j.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	j := NewJWTUtil(&JWTConfig{SigningKey: "secret", ExpirationHours: 1})

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{SessionID: "sess-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.ValidateToken(token)
	require.Error(t, err)
}

func TestGenerateToken_RequiresConfigAndSession(t *testing.T) {
	_, _, err := NewJWTUtil(nil).GenerateToken("sess-1", "42", "a@b.c")
	require.Error(t, err)

	_, _, err = NewJWTUtil(&JWTConfig{SigningKey: "secret"}).GenerateToken("", "42", "a@b.c")
	require.Error(t, err)
}
