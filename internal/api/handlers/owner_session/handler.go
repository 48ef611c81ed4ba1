package owner_session

import (
	"errors"
	"net/http"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/service/owners"
	"github.com/KrishRally/Sportitup/internal/service/owners/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid credentials"
	msgMissingCredentials = "email and password are required"
)

type Handler struct {
	service      OwnerService
	cookieSecure bool
	logger       Logger
}

func NewHandler(service OwnerService, cookieSecure bool, logger Logger) *Handler {
	return &Handler{
		service:      service,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// HandleLogin POST /api/v1/owner/session
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owner/session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, owners.ErrInvalidCredentials):
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)
		case errors.Is(err, owners.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)
		default:
			h.logger.Error("POST /owner/session - Failed to sign in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.SetSessionCookies(w, handlers.OwnerSessionCookie, result.Token,
		handlers.OwnerIDCookie, result.Owner.ID, result.ExpiresAt, h.cookieSecure)

	h.logger.Info("POST /owner/session - Owner signed in: owner_id=%s", result.Owner.ID)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{OK: true, Owner: result.Owner})
}

// HandleLogout DELETE /api/v1/owner/session
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := handlers.CookieValue(r, handlers.OwnerSessionCookie)

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("DELETE /owner/session - Failed to revoke session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.ClearCookies(w, h.cookieSecure, handlers.OwnerSessionCookie, handlers.OwnerIDCookie)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
