package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signTestToken подписывает токен с тем же payload, что выдает сервер
func signTestToken(t *testing.T, userID int64, username string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":       userID,
		"username": username,
		"exp":      expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return token
}

func TestFromToken(t *testing.T) {
	expiresAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token := signTestToken(t, 42, "alice", expiresAt)

	sess, err := FromToken(token)
	require.NoError(t, err)

	assert.Equal(t, token, sess.Token)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.True(t, sess.ExpiresAt.Equal(expiresAt))
	assert.False(t, sess.Expired())
}

func TestFromToken_Garbage(t *testing.T) {
	_, err := FromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestFromToken_NoExpiry(t *testing.T) {
	claims := jwt.MapClaims{"id": int64(1), "username": "alice"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)

	_, err = FromToken(token)
	assert.Error(t, err)
}
