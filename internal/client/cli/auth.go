package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/microblog/internal/client/session"
	"github.com/iudanet/microblog/internal/validation"
	"github.com/iudanet/microblog/pkg/api"
)

// Register запрашивает данные аккаунта и регистрирует пользователя.
// Токен не выдается: после регистрации нужно выполнить login
func (c *Cli) Register(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	req := api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	if err := c.apiClient.Register(ctx, req); err != nil {
		return err
	}

	c.io.Println("Registered successfully. Run 'microblog login' to sign in.")
	return nil
}

// Login выполняет аутентификацию и сохраняет полученную сессию локально
func (c *Cli) Login(ctx context.Context) error {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	// Строим сессию из токена и сохраняем вместо предыдущей
	sess, err := session.FromToken(resp.Token)
	if err != nil {
		return fmt.Errorf("failed to build session: %w", err)
	}

	if err := c.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Printf("Logged in as %s (valid until %s)\n", sess.Username, sess.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// Logout удаляет локальную сессию
// Сервер не хранит сессий, поэтому уведомлять его не нужно
func (c *Cli) Logout(ctx context.Context) error {
	if err := c.sessions.Delete(ctx); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("Logged out.")
	return nil
}

// Whoami показывает текущую сессию
func (c *Cli) Whoami(ctx context.Context) error {
	sess, err := c.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	status := "valid"
	if sess.Expired() {
		status = "expired"
	}

	c.io.Printf("User:    %s (id %d)\n", sess.Username, sess.UserID)
	c.io.Printf("Token:   %s until %s\n", status, sess.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}
