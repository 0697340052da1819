package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims зеркалит payload серверного токена: {id, username, exp}
type tokenClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// FromToken строит Session из выданного сервером токена.
// Подпись не проверяется: клиент не знает серверного секрета и доверяет
// токену, полученному по результату успешного login. Сервер проверит
// подпись на каждом защищенном запросе
func FromToken(token string) (*Session, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("token has no expiry")
	}

	return &Session{
		Token:     token,
		UserID:    claims.UserID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
