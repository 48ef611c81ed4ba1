package list_venues

import (
	"net/http"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
)

type Handler struct {
	service VenueService
}

func NewHandler(service VenueService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/public/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.List())
}
