package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken(7, "budi", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "budi", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	Init("test-secret")
	token, err := GenerateToken(7, "budi", "admin")
	require.NoError(t, err)

	Init("another-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	Init("test-secret")
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
