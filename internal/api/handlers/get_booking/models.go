package get_booking

import "github.com/KrishRally/Sportitup/internal/service/bookings/models"

// BookingResponse HTTP response model
type BookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`
}
