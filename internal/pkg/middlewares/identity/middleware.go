package identity

import (
	"context"
	"net/http"
	"strconv"

	"marketplace/internal/entities"
)

// Заголовки проставляет API-шлюз после проверки токена,
// сам сервис токены не разбирает.
const (
	HeaderUserID     = "X-User-ID"
	HeaderSessionKey = "X-Session-Key"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	sessionKey
)

func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if raw := r.Header.Get(HeaderUserID); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				ctx = context.WithValue(ctx, userIDKey, id)
			}

			if key := r.Header.Get(HeaderSessionKey); key != "" {
				ctx = context.WithValue(ctx, sessionKey, key)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID - идентификатор авторизованного пользователя из контекста.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// SessionKey - ключ анонимной сессии из контекста.
func SessionKey(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(sessionKey).(string)
	return key, ok
}

// Owner - владелец корзины из контекста. Авторизованный пользователь
// имеет приоритет над анонимной сессией.
func Owner(ctx context.Context) (entities.CartOwner, bool) {
	if id, ok := UserID(ctx); ok {
		return entities.CartOwner{UserID: &id}, true
	}
	if key, ok := SessionKey(ctx); ok {
		return entities.CartOwner{SessionKey: &key}, true
	}
	return entities.CartOwner{}, false
}
