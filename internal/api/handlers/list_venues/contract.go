package list_venues

import "github.com/KrishRally/Sportitup/internal/service/venues/models"

type VenueService interface {
	List() *models.VenueListResponse
}
