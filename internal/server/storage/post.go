package storage

import (
	"context"

	"github.com/iudanet/microblog/internal/models"
)

// PostStorage defines interface for post persistence.
//
// UpdatePost and DeletePost are conditional mutations: the ownership check
// is part of the SQL predicate (WHERE id = ? AND user_id = ?), so verifying
// ownership and applying the change is a single atomic statement. There is
// no separate read-then-write step to race against.
type PostStorage interface {
	// ListPosts returns all posts with the owner's username joined in,
	// ordered by creation time descending (newest first). Tie order between
	// posts with identical created_at is unspecified.
	ListPosts(ctx context.Context) ([]*models.Post, error)

	// CreatePost inserts a new post and sets post.ID from the inserted row
	CreatePost(ctx context.Context, post *models.Post) error

	// UpdatePost replaces the content of the post identified by postID,
	// but only if it is owned by callerID.
	// Returns ErrPostNotOwned when no row matched.
	UpdatePost(ctx context.Context, postID, callerID int64, content string) error

	// DeletePost removes the post identified by postID, but only if it is
	// owned by callerID. Returns ErrPostNotOwned when no row matched.
	DeletePost(ctx context.Context, postID, callerID int64) error
}
