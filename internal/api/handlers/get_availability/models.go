package get_availability

import getAvailability "github.com/KrishRally/Sportitup/internal/usecase/get_availability"

// OwnerAvailabilityResponse ответ кабинета владельца
type OwnerAvailabilityResponse struct {
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
	Blocked []string `json:"blocked"`
}

// PublicAvailabilityResponse ответ витрины
type PublicAvailabilityResponse struct {
	TurfID       string   `json:"turfId"`
	Date         string   `json:"date"`
	Slots        []string `json:"slots"`
	Blocked      []string `json:"blocked"`
	BlockedHours []string `json:"blockedHours"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func FromUseCaseOwner(resp *getAvailability.Response) *OwnerAvailabilityResponse {
	return &OwnerAvailabilityResponse{
		Date:    resp.Date,
		Slots:   orEmpty(resp.Slots),
		Blocked: orEmpty(resp.Blocked),
	}
}

func FromUseCasePublic(resp *getAvailability.Response) *PublicAvailabilityResponse {
	return &PublicAvailabilityResponse{
		TurfID:       resp.VenueID,
		Date:         resp.Date,
		Slots:        orEmpty(resp.Slots),
		Blocked:      orEmpty(resp.Blocked),
		BlockedHours: orEmpty(resp.BlockedHours),
	}
}
