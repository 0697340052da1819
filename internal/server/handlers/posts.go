package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/microblog/internal/models"
	"github.com/iudanet/microblog/internal/server/storage"
	"github.com/iudanet/microblog/pkg/api"
)

// PostsHandler обрабатывает CRUD запросы к постам
type PostsHandler struct {
	logger      *slog.Logger
	postStorage storage.PostStorage
}

// NewPostsHandler создает новый handler для постов
func NewPostsHandler(logger *slog.Logger, postStorage storage.PostStorage) *PostsHandler {
	return &PostsHandler{
		logger:      logger,
		postStorage: postStorage,
	}
}

// List обрабатывает GET /posts
// Публичный эндпоинт: отдает все посты с username автора, новые первыми
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.postStorage.ListPosts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list posts", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Конвертируем в API формат
	apiPosts := make([]api.Post, 0, len(posts))
	for _, post := range posts {
		apiPosts = append(apiPosts, api.Post{
			ID:        post.ID,
			UserID:    post.UserID,
			Username:  post.Username,
			Content:   post.Content,
			CreatedAt: post.CreatedAt,
		})
	}

	sendJSON(h.logger, w, apiPosts, http.StatusOK)
}

// Create обрабатывает POST /posts
// Требует проверенную личность вызывающего (AuthMiddleware)
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Получаем user id из контекста (установлен AuthMiddleware)
	callerID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create post request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Content == "" {
		sendError(h.logger, w, "content is required", http.StatusBadRequest)
		return
	}

	post := &models.Post{
		UserID:    callerID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.postStorage.CreatePost(ctx, post); err != nil {
		h.logger.ErrorContext(ctx, "failed to create post", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("user_id", callerID))

	sendJSON(h.logger, w, api.MessageResponse{Message: "Post created successfully"}, http.StatusCreated)
}

// Update обрабатывает PUT /posts/{id}
// Условное обновление: предикат WHERE id AND user_id атомарно совмещает
// выбор строки и проверку владельца. Ноль затронутых строк означает 403 —
// "нет такого поста" и "пост чужой" намеренно неразличимы, чтобы не
// раскрывать существование поста не-владельцу.
// Content здесь не валидируется (асимметрия с Create сохранена умышленно)
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		sendError(h.logger, w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req api.UpdatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update post request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.postStorage.UpdatePost(ctx, postID, callerID, req.Content); err != nil {
		if errors.Is(err, storage.ErrPostNotOwned) {
			h.logger.WarnContext(ctx, "update rejected",
				slog.Int64("post_id", postID),
				slog.Int64("user_id", callerID))
			sendError(h.logger, w, "not authorized to edit this post", http.StatusForbidden)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update post", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MessageResponse{Message: "Post updated successfully"}, http.StatusOK)
}

// Delete обрабатывает DELETE /posts/{id}
// Тот же условный паттерн, что и Update: ноль затронутых строк — 403
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		sendError(h.logger, w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.postStorage.DeletePost(ctx, postID, callerID); err != nil {
		if errors.Is(err, storage.ErrPostNotOwned) {
			h.logger.WarnContext(ctx, "delete rejected",
				slog.Int64("post_id", postID),
				slog.Int64("user_id", callerID))
			sendError(h.logger, w, "not authorized to delete this post", http.StatusForbidden)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete post", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MessageResponse{Message: "Post deleted successfully"}, http.StatusOK)
}

// parsePostID извлекает {id} из path parameter (Go 1.22+)
func parsePostID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
