package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestSignAndParseToken(t *testing.T) {
	t.Parallel()

	tokenStr, err := SignToken("user-42", "admin", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ParseToken(tokenStr, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tokenStr, err := SignToken("user-42", "admin", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tokenStr, "another-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tokenStr, err := SignToken("user-42", "admin", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tokenStr, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
