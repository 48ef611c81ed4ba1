package owner_session

import "github.com/KrishRally/Sportitup/internal/service/owners/models"

// LoginResponse HTTP response model
type LoginResponse struct {
	OK    bool                  `json:"ok"`
	Owner *models.OwnerResponse `json:"owner"`
}
