package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/microblog/internal/models"
	"github.com/iudanet/microblog/internal/server/storage"
	"github.com/iudanet/microblog/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // email -> User
	nextID      int64
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Email]; exists {
		return storage.ErrEmailTaken
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func registerRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func loginRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	userStorage := newMockUserStorage()
	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := httptest.NewRecorder()
	handler.Register(w, registerRequest(t, api.RegisterRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)

	// Verify user was created with a bcrypt hash, not the plaintext
	user, err := userStorage.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")))
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testJWTConfig())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_UnknownField(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testJWTConfig())

	// Неизвестные поля отклоняются на границе
	w := httptest.NewRecorder()
	handler.Register(w, registerRequest(t, map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw",
		"role":     "admin",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testJWTConfig())

	tests := []struct {
		name string
		req  api.RegisterRequest
	}{
		{"empty username", api.RegisterRequest{Email: "a@x.com", Password: "pw"}},
		{"empty email", api.RegisterRequest{Username: "alice", Password: "pw"}},
		{"empty password", api.RegisterRequest{Username: "alice", Email: "a@x.com"}},
		{"bad email format", api.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Register(w, registerRequest(t, tt.req))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	userStorage := newMockUserStorage()
	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := httptest.NewRecorder()
	handler.Register(w, registerRequest(t, api.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	// Повторная регистрация с тем же email всегда отклоняется
	w = httptest.NewRecorder()
	handler.Register(w, registerRequest(t, api.RegisterRequest{
		Username: "bob", Email: "a@x.com", Password: "other",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Equal(t, "email already exists", errResp.Message)
}

func TestAuthHandler_Register_StorageError(t *testing.T) {
	userStorage := newMockUserStorage()
	userStorage.createError = errors.New("disk full")
	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := httptest.NewRecorder()
	handler.Register(w, registerRequest(t, api.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "pw",
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	userStorage := newMockUserStorage()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, userStorage.CreateUser(context.Background(), &models.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}))

	cfg := testJWTConfig()
	handler := NewAuthHandler(setupTestLogger(), userStorage, cfg)

	w := httptest.NewRecorder()
	handler.Login(w, loginRequest(t, api.LoginRequest{Email: "a@x.com", Password: "pw"}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	// Токен декодируется в того же пользователя
	claims, err := ValidateAccessToken(cfg, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	userStorage := newMockUserStorage()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, userStorage.CreateUser(context.Background(), &models.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: string(hash),
	}))

	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := httptest.NewRecorder()
	handler.Login(w, loginRequest(t, api.LoginRequest{Email: "a@x.com", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testJWTConfig())

	w := httptest.NewRecorder()
	handler.Login(w, loginRequest(t, api.LoginRequest{Email: "nobody@x.com", Password: "pw"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), testJWTConfig())

	tests := []struct {
		name string
		req  api.LoginRequest
	}{
		{"empty email", api.LoginRequest{Password: "pw"}},
		{"empty password", api.LoginRequest{Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Login(w, loginRequest(t, tt.req))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
