package api

import "time"

// Post представляет пост в ленте вместе с username автора
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest представляет запрос на создание поста
type CreatePostRequest struct {
	Content string `json:"content"`
}

// UpdatePostRequest представляет запрос на изменение содержимого поста
type UpdatePostRequest struct {
	Content string `json:"content"`
}
