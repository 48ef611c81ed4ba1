package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/api/middleware"
	"github.com/KrishRally/Sportitup/internal/service/bookings"
)

const msgNotFound = "booking not found"

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

// Handle DELETE /api/v1/admin/bookings/{id}
// Бронирование не удаляется, а переводится в canceled. Повторный вызов - 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}
	bookingID := mux.Vars(r)["id"]

	err := h.service.Cancel(r.Context(), ownerID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings/{id} - Booking not found: booking_id=%s, owner_id=%s", bookingID, ownerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Booking canceled: booking_id=%s, owner_id=%s", bookingID, ownerID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
