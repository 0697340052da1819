package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDKey тип для ключа request id в контексте
type requestIDKey struct{}

// RequestIDHeader заголовок, в котором request id возвращается клиенту
const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware присваивает каждому запросу уникальный id.
// Если клиент прислал свой X-Request-Id, он сохраняется, иначе генерируется
// новый UUID. Id кладется в контекст и echo-ится в заголовке ответа
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID извлекает request id из контекста
// Возвращает пустую строку, если middleware не был применен
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}
