package user_session

import (
	"errors"
	"net/http"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/api/middleware"
	"github.com/KrishRally/Sportitup/internal/service/users"
)

type Handler struct {
	users        UserService
	sessions     SessionRevoker
	cookieSecure bool
	logger       Logger
}

func NewHandler(users UserService, sessions SessionRevoker, cookieSecure bool, logger Logger) *Handler {
	return &Handler{
		users:        users,
		sessions:     sessions,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// HandleGet GET /api/v1/auth/session
// Без сессии или для удаленного пользователя отвечает {"user": null}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondJSON(w, http.StatusOK, &SessionResponse{})
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, users.ErrUserNotFound) {
			h.logger.Error("GET /auth/session - Failed to load user: user_id=%s, error=%v", userID, err)
		}
		handlers.RespondJSON(w, http.StatusOK, &SessionResponse{})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SessionResponse{User: user})
}

// HandleLogout POST /api/v1/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := handlers.CookieValue(r, handlers.UserSessionCookie)

	if err := h.sessions.Revoke(r.Context(), token); err != nil {
		h.logger.Error("POST /auth/logout - Failed to revoke session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.ClearCookies(w, h.cookieSecure, handlers.UserSessionCookie, handlers.UserIDCookie)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
