package domain

import "github.com/KrishRally/Sportitup/pkg/types"

// Venue площадка (turf) на витрине. Каждая площадка принадлежит одному владельцу.
type Venue struct {
	ID           string
	Name         string
	Location     string
	OwnerID      string
	Sports       []Sport
	PricePerHour float64
	OpenTime     types.TimeString
	CloseTime    types.TimeString
}

// HourlySlots часовые слоты площадки от открытия до закрытия
func (v *Venue) HourlySlots() []string {
	return types.HourlySlots(v.OpenTime, v.CloseTime)
}

// OffersSport returns true if the sport can be booked at this venue
func (v *Venue) OffersSport(s Sport) bool {
	for _, sport := range v.Sports {
		if sport == s {
			return true
		}
	}
	return false
}
