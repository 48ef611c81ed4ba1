package update_booking

import "github.com/KrishRally/Sportitup/internal/service/bookings/models"

// BookingResponse HTTP response model
type BookingResponse struct {
	OK      bool                    `json:"ok"`
	Booking *models.BookingResponse `json:"booking"`
}
