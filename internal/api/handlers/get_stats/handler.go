package get_stats

import (
	"net/http"

	"github.com/KrishRally/Sportitup/internal/api/handlers"
	"github.com/KrishRally/Sportitup/internal/api/middleware"
	getStats "github.com/KrishRally/Sportitup/internal/usecase/get_stats"
)

type Handler struct {
	useCase GetStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getStats.Request{OwnerID: ownerID})
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to compute stats: owner_id=%s, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
