package verify_otp

import (
	"errors"
	"net/http"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	verifyOTP "github.com/KrishRally/Sportitup/internal/usecase/verify_otp"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPhone       = "invalid phone number"
)

type Handler struct {
	useCase      VerifyOTPUseCase
	cookieSecure bool
	logger       Logger
}

func NewHandler(useCase VerifyOTPUseCase, cookieSecure bool, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Handle POST /api/v1/auth/verify-otp {uid, name?, phone}
// Код проверяется внешним провайдером, сюда приходит результат.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/verify-otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, verifyOTP.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, verifyOTP.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, verifyOTP.ErrInvalidInput))

		default:
			h.logger.Error("POST /auth/verify-otp - Failed to verify user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.SetSessionCookies(w, handlers.UserSessionCookie, result.Token,
		handlers.UserIDCookie, result.User.ID, result.ExpiresAt, h.cookieSecure)

	h.logger.Info("POST /auth/verify-otp - User verified: user_id=%s, created=%t", result.User.ID, result.Created)
	handlers.RespondJSON(w, http.StatusOK, &VerifyOTPResponse{OK: true, User: result.User})
}
