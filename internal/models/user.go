package models

import "time"

// User представляет пользователя в системе
// Пользователь неизменяем после регистрации: нет путей обновления или удаления
type User struct {
	ID           int64     `json:"id"`         // автоинкрементный ID
	Username     string    `json:"username"`   // отображаемое имя
	Email        string    `json:"email"`      // уникальный email
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, никогда не сериализуется
	CreatedAt    time.Time `json:"created_at"` // время регистрации
}
