package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/microblog/internal/models"
	"github.com/iudanet/microblog/internal/server/storage"
)

// ListPosts returns all posts with the owner's username, newest first
func (s *Storage) ListPosts(ctx context.Context) ([]*models.Post, error) {
	query := `
		SELECT posts.id, posts.user_id, users.username, posts.content, posts.created_at
		FROM posts
		JOIN users ON posts.user_id = users.id
		ORDER BY posts.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.Post, 0)
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Username,
			&post.Content,
			&post.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// CreatePost inserts a new post owned by post.UserID
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (user_id, content, created_at)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		post.UserID,
		post.Content,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted post id: %w", err)
	}
	post.ID = id

	return nil
}

// UpdatePost replaces post content if the post is owned by callerID.
// Проверка владельца — часть предиката UPDATE, одно атомарное выражение
func (s *Storage) UpdatePost(ctx context.Context, postID, callerID int64, content string) error {
	query := `UPDATE posts SET content = ? WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, content, postID, callerID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPostNotOwned
	}

	return nil
}

// DeletePost removes the post if it is owned by callerID
func (s *Storage) DeletePost(ctx context.Context, postID, callerID int64) error {
	query := `DELETE FROM posts WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, postID, callerID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPostNotOwned
	}

	return nil
}
