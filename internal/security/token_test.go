package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-unit-test-secret!!!"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	access, err := tm.GenerateAccessToken(42, "op@example.com", "admin")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "op@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenTypes(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	refresh, err := tm.GenerateRefreshToken(42, "op@example.com", "staff")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute, -time.Minute)

	access, err := tm.GenerateAccessToken(42, "op@example.com", "staff")
	require.NoError(t, err)

	_, err = tm.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTamperedToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	other := NewTokenManager("another-secret-another-secret-ok!!!", time.Hour, 24*time.Hour)

	access, err := other.GenerateAccessToken(42, "op@example.com", "staff")
	require.NoError(t, err)

	_, err = tm.ValidateToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
