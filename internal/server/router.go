package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/microblog/internal/server/handlers"
	"github.com/iudanet/microblog/internal/server/middleware"
	"github.com/iudanet/microblog/internal/server/storage"
)

// Storage объединяет интерфейсы хранилища, нужные серверу
type Storage interface {
	storage.UserStorage
	storage.PostStorage
	handlers.Pinger
}

// NewRouter собирает HTTP роутер сервера.
// Пути API фиксированы контрактом: /auth/register, /auth/login, /posts, /posts/{id}
func NewRouter(logger *slog.Logger, store Storage, jwtConfig handlers.JWTConfig) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	postsHandler := handlers.NewPostsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store)

	// Middleware для защищенных роутов
	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("GET /posts", postsHandler.List)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Protected routes
	mux.Handle("POST /posts", requireAuth(http.HandlerFunc(postsHandler.Create)))
	mux.Handle("PUT /posts/{id}", requireAuth(http.HandlerFunc(postsHandler.Update)))
	mux.Handle("DELETE /posts/{id}", requireAuth(http.HandlerFunc(postsHandler.Delete)))

	// Общая цепочка: request id -> recovery -> логирование (кроме health)
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)
	handler = middleware.RequestIDMiddleware(handler)

	return handler
}
