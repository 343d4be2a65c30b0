package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	sub := Subject{UserID: "user-1", Role: "PLAYER", Email: "ana@example.com", Name: "Ana"}

	access, err := GenerateJWT(sub, secret, 15)
	require.NoError(t, err)

	claims, err := ValidateJWT(access, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "PLAYER", claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)
	assert.InDelta(t, (15 * time.Minute).Seconds(), claims.RemainingTTL().Seconds(), 5)

	refresh, err := GenerateRefreshToken(sub, secret, 7)
	require.NoError(t, err)
	refreshClaims, err := ValidateJWT(refresh, secret)
	require.NoError(t, err)
	assert.Equal(t, TypeRefresh, refreshClaims.Type)
	assert.NotEqual(t, claims.ID, refreshClaims.ID)
}

func TestValidateJWT_Rejects(t *testing.T) {
	sub := Subject{UserID: "user-1"}

	signed, err := GenerateJWT(sub, secret, 15)
	require.NoError(t, err)
	_, err = ValidateJWT(signed, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateJWT(sub, secret, -1)
	require.NoError(t, err)
	_, err = ValidateJWT(expired, secret)
	assert.EqualError(t, err, "token has expired")

	_, err = ValidateJWT("", secret)
	assert.Error(t, err)

	anonymous, err := GenerateJWT(Subject{}, secret, 15)
	require.NoError(t, err)
	_, err = ValidateJWT(anonymous, secret)
	assert.EqualError(t, err, "user_id claim is missing")

	_, err = GenerateJWT(sub, "", 15)
	assert.Error(t, err)
}

func TestRemainingTTL(t *testing.T) {
	assert.Zero(t, (&Claims{}).RemainingTTL())
}
