package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("sekret123")
	require.NoError(t, err)
	require.NotEqual(t, "sekret123", hash)

	require.True(t, CheckPassword(hash, "sekret123"))
	require.False(t, CheckPassword(hash, "wrong"))
	require.False(t, CheckPassword("", "sekret123"))
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	tok, err := svc.Issue("64f0c34b2a3c4d5e6f708091", "alice@example.com")
	require.NoError(t, err)

	uid, err := svc.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "64f0c34b2a3c4d5e6f708091", uid)
}

func TestTokenExpired(t *testing.T) {
	svc := NewService([]byte("test-secret"), -time.Minute)

	tok, err := svc.Issue("64f0c34b2a3c4d5e6f708091", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewService([]byte("secret-a"), time.Hour)
	verifier := NewService([]byte("secret-b"), time.Hour)

	tok, err := issuer.Issue("64f0c34b2a3c4d5e6f708091", "alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Parse(tok)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
