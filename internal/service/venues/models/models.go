package models

import "github.com/KrishRally/Sportitup/internal/domain"

// VenueResponse площадка на витрине
type VenueResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Sports       []string `json:"sports"`
	PricePerHour float64  `json:"pricePerHour"`
	OpenTime     string   `json:"openTime"`
	CloseTime    string   `json:"closeTime"`
	Slots        []string `json:"slots"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

func FromDomainVenue(v *domain.Venue) VenueResponse {
	sports := make([]string, len(v.Sports))
	for i, s := range v.Sports {
		sports[i] = string(s)
	}
	return VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		Location:     v.Location,
		Sports:       sports,
		PricePerHour: v.PricePerHour,
		OpenTime:     v.OpenTime.String(),
		CloseTime:    v.CloseTime.String(),
		Slots:        v.HourlySlots(),
	}
}

func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{Venues: make([]VenueResponse, 0, len(venues))}
	for _, v := range venues {
		resp.Venues = append(resp.Venues, FromDomainVenue(v))
	}
	return resp
}
