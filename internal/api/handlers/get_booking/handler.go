package get_booking

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

// Handle GET /api/v1/admin/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}
	bookingID := mux.Vars(r)["id"]

	result, err := h.service.GetForOwner(r.Context(), ownerID, bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /admin/bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{Booking: result})
}
