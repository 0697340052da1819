package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/microblog/internal/models"
	"github.com/iudanet/microblog/internal/server/storage"
)

// mustCreatePost inserts a post owned by userID at the given time
func mustCreatePost(t *testing.T, s *Storage, userID int64, content string, createdAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		UserID:    userID,
		Content:   content,
		CreatedAt: createdAt,
	}
	require.NoError(t, s.CreatePost(context.Background(), post))
	return post
}

func TestPostStorage_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := mustCreateUser(t, s, "alice", "a@x.com")

	post := mustCreatePost(t, s, alice.ID, "hello", time.Now().UTC())
	assert.Positive(t, post.ID)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	// Username владельца подтягивается через JOIN
	assert.Equal(t, post.ID, posts[0].ID)
	assert.Equal(t, alice.ID, posts[0].UserID)
	assert.Equal(t, "alice", posts[0].Username)
	assert.Equal(t, "hello", posts[0].Content)
}

func TestPostStorage_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := mustCreateUser(t, s, "alice", "a@x.com")

	// Вставляем в перемешанном порядке: сортировка должна идти
	// по created_at, не по порядку вставки
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mustCreatePost(t, s, alice.ID, "t2", base.Add(1*time.Minute))
	mustCreatePost(t, s, alice.ID, "t3", base.Add(2*time.Minute))
	mustCreatePost(t, s, alice.ID, "t1", base)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "t3", posts[0].Content)
	assert.Equal(t, "t2", posts[1].Content)
	assert.Equal(t, "t1", posts[2].Content)
}

func TestPostStorage_List_Empty(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	posts, err := s.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
}

func TestPostStorage_UpdatePost_Owner(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := mustCreateUser(t, s, "alice", "a@x.com")
	post := mustCreatePost(t, s, alice.ID, "hello", time.Now().UTC())

	// Владелец может обновлять сколько угодно раз
	require.NoError(t, s.UpdatePost(ctx, post.ID, alice.ID, "bye"))
	require.NoError(t, s.UpdatePost(ctx, post.ID, alice.ID, "bye again"))

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "bye again", posts[0].Content)
}

func TestPostStorage_UpdatePost_NotOwner(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := mustCreateUser(t, s, "alice", "a@x.com")
	bob := mustCreateUser(t, s, "bob", "b@x.com")
	post := mustCreatePost(t, s, alice.ID, "hello", time.Now().UTC())

	// Не-владелец получает ту же ошибку, что и для несуществующего поста
	err := s.UpdatePost(ctx, post.ID, bob.ID, "hacked")
	assert.ErrorIs(t, err, storage.ErrPostNotOwned)

	err = s.UpdatePost(ctx, 999, alice.ID, "hacked")
	assert.ErrorIs(t, err, storage.ErrPostNotOwned)

	// Содержимое не изменилось
	posts, listErr := s.ListPosts(ctx)
	require.NoError(t, listErr)
	assert.Equal(t, "hello", posts[0].Content)
}

func TestPostStorage_UpdatePost_UserIDNeverChanges(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := mustCreateUser(t, s, "alice", "a@x.com")
	post := mustCreatePost(t, s, alice.ID, "hello", time.Now().UTC())

	require.NoError(t, s.UpdatePost(ctx, post.ID, alice.ID, "bye"))

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, posts[0].UserID)
}

func TestPostStorage_DeletePost(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := mustCreateUser(t, s, "alice", "a@x.com")
	bob := mustCreateUser(t, s, "bob", "b@x.com")
	post := mustCreatePost(t, s, alice.ID, "hello", time.Now().UTC())

	// Чужой пост удалить нельзя
	err := s.DeletePost(ctx, post.ID, bob.ID)
	assert.ErrorIs(t, err, storage.ErrPostNotOwned)

	// Владелец удаляет ровно один раз
	require.NoError(t, s.DeletePost(ctx, post.ID, alice.ID))

	// Повторное удаление: строки уже нет
	err = s.DeletePost(ctx, post.ID, alice.ID)
	assert.ErrorIs(t, err, storage.ErrPostNotOwned)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
