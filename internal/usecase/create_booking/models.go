package create_booking

import (
	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/service/bookings/models"
)

// Request модель запроса на создание бронирования.
// OwnerID задан - бронирование из кабинета (admin), иначе с витрины по VenueID (online).
type Request struct {
	OwnerID string  `validate:"omitempty,max=64"`
	VenueID string  `json:"turfId" validate:"required_without=OwnerID,max=64"`
	UserID  *string // пользователь витрины, если вошел

	Date          string   `json:"date" validate:"required,date"`
	Time          string   `json:"time" validate:"required,slot"`
	Sport         string   `json:"sport" validate:"required,oneof=cricket football pickleball"`
	Customer      string   `json:"customer" validate:"required,max=100"`
	CustomerPhone *string  `json:"customerPhone" validate:"omitempty,phone"`
	Amount        *float64 `json:"amount" validate:"omitempty,gte=0"`
}

// Source источник бронирования по типу запроса
func (r *Request) Source() domain.BookingSource {
	if r.OwnerID != "" {
		return domain.SourceAdmin
	}
	return domain.SourceOnline
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *models.BookingResponse
}
