package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/service/sessions"
)

type contextKey string

const (
	ownerIDKey contextKey = "owner_id"
	userIDKey  contextKey = "user_id"
)

// OwnerAuth пропускает запрос только с действующей сессией владельца (cookie owner_session)
func OwnerAuth(auth SessionAuthenticator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handlers.CookieValue(r, handlers.OwnerSessionCookie)

			sess, err := auth.Authenticate(r.Context(), token, domain.RoleOwner)
			if err != nil {
				if !errors.Is(err, sessions.ErrUnauthorized) {
					logger.Error("OwnerAuth: %s %s - session check failed: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
					return
				}
				logger.Warn("OwnerAuth: %s %s - unauthorized: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ownerIDKey, sess.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserSession читает сессию пользователя витрины (cookie user_session).
// required = false: без сессии запрос проходит анонимно.
func UserSession(auth SessionAuthenticator, required bool, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handlers.CookieValue(r, handlers.UserSessionCookie)

			sess, err := auth.Authenticate(r.Context(), token, domain.RoleUser)
			if err != nil {
				if !errors.Is(err, sessions.ErrUnauthorized) {
					logger.Error("UserSession: %s %s - session check failed: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
					return
				}
				if required {
					handlers.RespondUnauthorized(w)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, sess.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOwnerID id владельца из контекста запроса
func GetOwnerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ownerIDKey).(string)
	return id, ok && id != ""
}

// GetUserID id пользователя витрины из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithOwnerID кладет id владельца в контекст (для тестов обработчиков)
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

// WithUserID кладет id пользователя в контекст (для тестов обработчиков)
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
