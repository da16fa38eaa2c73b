package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/parkshare/PSM-BookingService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	headerUserID = "X-User-ID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

// Auth извлекает ID пользователя из заголовка X-User-ID и кладёт его в контекст.
// Аутентификацию выполняет API gateway, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
