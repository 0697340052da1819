package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/microblog/internal/client/api"
	"github.com/iudanet/microblog/internal/client/iocli"
	"github.com/iudanet/microblog/internal/client/session"
)

// SessionStore определяет операции над сохраненной сессией клиента
type SessionStore interface {
	Save(ctx context.Context, s *session.Session) error
	Get(ctx context.Context) (*session.Session, error)
	Delete(ctx context.Context) error
}

// Cli связывает API клиент, хранилище сессии и терминальный ввод-вывод
type Cli struct {
	apiClient *api.Client
	sessions  SessionStore
	io        iocli.IO
}

func New(apiClient *api.Client, sessions SessionStore, io iocli.IO) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
		io:        io,
	}
}

// requireSession возвращает сохраненную сессию или ошибку, если
// пользователь не залогинен либо срок токена истек
func (c *Cli) requireSession(ctx context.Context) (*session.Session, error) {
	sess, err := c.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, fmt.Errorf("not logged in. Please run 'microblog login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if sess.Expired() {
		return nil, fmt.Errorf("session expired. Please run 'microblog login' again")
	}

	return sess, nil
}

// PrintUsage печатает справку по командам
func PrintUsage(io iocli.IO) {
	io.Println("Usage: microblog [flags] <command> [arguments]")
	io.Println("")
	io.Println("Commands:")
	io.Println("  register                 Create a new account")
	io.Println("  login                    Log in and store a session token")
	io.Println("  logout                   Remove the stored session token")
	io.Println("  whoami                   Show the current session")
	io.Println("  feed                     Show all posts, newest first")
	io.Println("  post <content>           Create a new post")
	io.Println("  edit <id> <content>      Edit your post")
	io.Println("  delete <id>              Delete your post")
	io.Println("")
	io.Println("Flags:")
	io.Println("  -server <url>            Server URL (default http://localhost:8080)")
	io.Println("  -db <path>               Path to local session database")
}
