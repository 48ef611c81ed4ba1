package reset_demo

import (
	"net/http"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/api/middleware"
)

type Handler struct {
	store  Resetter
	logger Logger
}

func NewHandler(store Resetter, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/reset
// Регистрируется только при demo.enable_reset и хранилище в памяти.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.GetOwnerID(r.Context())

	h.store.Reset()

	h.logger.Warn("POST /admin/reset - Demo data cleared by owner_id=%s", ownerID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
