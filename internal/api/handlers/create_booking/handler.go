package create_booking

import (
	"errors"
	"net/http"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/api/middleware"
	createBooking "github.com/KrishRally/Sportitup/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotAvailable   = "slot is not available"
	msgVenueNotFound      = "turf not found"
	msgSportNotOffered    = "sport is not offered at this turf"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleAdmin POST /api/v1/admin/bookings (source=admin)
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest()
	useCaseReq.OwnerID = ownerID
	useCaseReq.VenueID = ""

	h.create(w, r, useCaseReq)
}

// HandlePublic POST /api/v1/public/bookings (source=online)
// Вошедший пользователь привязывается к бронированию.
func (h *Handler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest()
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		useCaseReq.UserID = &userID
	}

	h.create(w, r, useCaseReq)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, req *createBooking.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST %s - Slot not available: date=%s, time=%s", r.URL.Path, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrSportNotOffered):
			handlers.RespondBadRequest(w, msgSportNotOffered)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, createBooking.ErrInvalidInput))

		default:
			h.logger.Error("POST %s - Failed to create booking: %v", r.URL.Path, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST %s - Booking created: booking_id=%s, owner_id=%s, source=%s",
		r.URL.Path, result.Booking.ID, result.Booking.OwnerID, result.Booking.Source)
	handlers.RespondJSON(w, http.StatusCreated, &BookingResponse{OK: true, Booking: result.Booking})
}
