package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	tokenString, err := CreateToken(userID, secret)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString, secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, err := CreateToken(uuid.New(), []byte("right-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", []byte("secret"))
	assert.Error(t, err)
}
