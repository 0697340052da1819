package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/microblog/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером.
// Токен не хранится в клиенте: на каждый защищенный вызов credential
// передается явно, без глобального состояния
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
// Токен не выдается: после регистрации нужен отдельный Login
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", "", req, nil); err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	return nil
}

// Login выполняет аутентификацию пользователя и возвращает токен
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListPosts возвращает ленту постов (публичный эндпоинт)
func (c *Client) ListPosts(ctx context.Context) ([]api.Post, error) {
	var posts []api.Post
	if err := c.doRequest(ctx, http.MethodGet, "/posts", "", nil, &posts); err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}
	return posts, nil
}

// CreatePost создает новый пост от имени владельца токена
func (c *Client) CreatePost(ctx context.Context, token, content string) error {
	req := api.CreatePostRequest{Content: content}
	if err := c.doRequest(ctx, http.MethodPost, "/posts", token, req, nil); err != nil {
		return fmt.Errorf("create post request failed: %w", err)
	}
	return nil
}

// UpdatePost изменяет содержимое поста, принадлежащего владельцу токена
func (c *Client) UpdatePost(ctx context.Context, token string, postID int64, content string) error {
	req := api.UpdatePostRequest{Content: content}
	path := fmt.Sprintf("/posts/%d", postID)
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, nil); err != nil {
		return fmt.Errorf("update post request failed: %w", err)
	}
	return nil
}

// DeletePost удаляет пост, принадлежащий владельцу токена
func (c *Client) DeletePost(ctx context.Context, token string, postID int64) error {
	path := fmt.Sprintf("/posts/%d", postID)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete post request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
// token добавляется как bearer credential, если непустой
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
