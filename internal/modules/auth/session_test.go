package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_IssueParseRoundTrip(t *testing.T) {
	sessions := NewSessions("test-secret")

	token, expiresAt, err := sessions.Issue("user-1")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	userID, err := sessions.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessions_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewSessions("secret-a").Issue("user-1")
	require.NoError(t, err)

	_, err = NewSessions("secret-b").Parse(token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessions_RejectsTamperedToken(t *testing.T) {
	sessions := NewSessions("test-secret")

	token, _, err := sessions.Issue("user-1")
	require.NoError(t, err)

	_, err = sessions.Parse(token + "x")
	require.ErrorIs(t, err, ErrInvalidSession)

	_, err = sessions.Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessions_RejectsExpiredToken(t *testing.T) {
	sessions := NewSessions("test-secret")

	claims := &jwt.StandardClaims{
		Subject:   "user-1",
		IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = sessions.Parse(expired)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessions_RejectsMissingSubject(t *testing.T) {
	sessions := NewSessions("test-secret")

	claims := &jwt.StandardClaims{
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = sessions.Parse(token)
	require.ErrorIs(t, err, ErrInvalidSession)
}
