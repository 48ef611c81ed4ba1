package get_availability

import (
	"errors"
	"net/http"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/api/middleware"
	getAvailability "github.com/KrishRally/Sportitup/internal/usecase/get_availability"
)

const (
	msgVenueNotFound = "turf not found"
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleOwner GET /api/v1/admin/availability?date=YYYY-MM-DD
func (h *Handler) HandleOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	result, ok := h.execute(w, r, &getAvailability.Request{
		OwnerID: ownerID,
		Date:    r.URL.Query().Get("date"),
	})
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseOwner(result))
}

// HandlePublic GET /api/v1/public/availability?turfId=...&date=YYYY-MM-DD
func (h *Handler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, ok := h.execute(w, r, &getAvailability.Request{
		VenueID: query.Get("turfId"),
		Date:    query.Get("date"),
	})
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCasePublic(result))
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, req *getAvailability.Request) (*getAvailability.Response, bool) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrVenueNotFound):
			h.logger.Warn("GET %s - Venue not found: turf_id=%s", r.URL.Path, req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, getAvailability.ErrInvalidInput))

		default:
			h.logger.Error("GET %s - Failed to resolve availability: %v", r.URL.Path, err)
			handlers.RespondInternalError(w)
		}
		return nil, false
	}
	return result, true
}
