package models

import "time"

// Post представляет пост пользователя
// Инвариант: UserID никогда не меняется после создания,
// изменять и удалять пост может только владелец
type Post struct {
	ID        int64     `json:"id"`         // автоинкрементный ID
	UserID    int64     `json:"user_id"`    // ID владельца (устанавливается при создании)
	Username  string    `json:"username"`   // username владельца, заполняется при чтении через JOIN
	Content   string    `json:"content"`    // содержимое, непустое при создании
	CreatedAt time.Time `json:"created_at"` // серверное время создания
}
