package session

import (
	"errors"
	"time"
)

// ErrSessionNotFound indicates that no session is stored (not logged in)
var ErrSessionNotFound = errors.New("session not found")

// Session представляет сохраненный credential клиента.
// Неизменяемый объект: передается в вызовы явно, вместо чтения
// из глобального состояния
type Session struct {
	Token     string    `json:"token"`      // bearer token
	UserID    int64     `json:"user_id"`    // id владельца токена
	Username  string    `json:"username"`   // username владельца
	ExpiresAt time.Time `json:"expires_at"` // срок действия токена
}

// Expired сообщает, истек ли срок действия сохраненного токена
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
