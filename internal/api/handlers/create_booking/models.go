package create_booking

import (
	"github.com/KrishRally/Sportitup/internal/service/bookings/models"
	createBooking "github.com/KrishRally/Sportitup/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model. turfId нужен только витрине.
type CreateBookingRequest struct {
	TurfID        string   `json:"turfId"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Sport         string   `json:"sport"`
	Customer      string   `json:"customer"`
	CustomerPhone *string  `json:"customerPhone,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	OK      bool                    `json:"ok"`
	Booking *models.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		VenueID:       r.TurfID,
		Date:          r.Date,
		Time:          r.Time,
		Sport:         r.Sport,
		Customer:      r.Customer,
		CustomerPhone: r.CustomerPhone,
		Amount:        r.Amount,
	}
}
