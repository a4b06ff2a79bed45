package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/shared"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueToken("user-123", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := VerifyToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
}

func TestTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueToken("user-123", secret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, secret)
	require.ErrorIs(t, err, shared.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("user-123", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("secret-b"))
	require.ErrorIs(t, err, shared.ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := VerifyToken("not-a-token", []byte("test-secret"))
	require.ErrorIs(t, err, shared.ErrInvalidToken)
}
