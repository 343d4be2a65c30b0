package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, "secreto123", hash)
	assert.True(t, CheckPassword(hash, "secreto123"))
	assert.False(t, CheckPassword(hash, "secreto124"))
	assert.False(t, CheckPassword("not-a-hash", "secreto123"))
}
