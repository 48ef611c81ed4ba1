package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/api/middleware"
	"github.com/KrishRally/Sportitup/internal/service/bookings"
	"github.com/KrishRally/Sportitup/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgCannotReactivate   = "canceled booking cannot be reactivated"
	msgSlotNotAvailable   = "slot is not available"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/bookings/{id}
// Редактируются date, time, sport, customer, status, amount; прочие поля тела игнорируются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}
	bookingID := mux.Vars(r)["id"]

	var req models.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), ownerID, bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidStatusTransition):
			handlers.RespondBadRequest(w, msgCannotReactivate)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, bookings.ErrInvalidInput))

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("PUT /admin/bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{id} - Booking updated: booking_id=%s, owner_id=%s", bookingID, ownerID)
	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{OK: true, Booking: result})
}
