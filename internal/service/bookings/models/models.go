package models

import (
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// Request модели

// UpdateBookingRequest правка бронирования владельцем.
// Меняются только переданные поля; id и ownerId не редактируются.
type UpdateBookingRequest struct {
	Date     *string  `json:"date,omitempty" validate:"omitempty,date"`
	Time     *string  `json:"time,omitempty" validate:"omitempty,slot"`
	Sport    *string  `json:"sport,omitempty" validate:"omitempty,oneof=cricket football pickleball"`
	Customer *string  `json:"customer,omitempty" validate:"omitempty,max=100"`
	Status   *string  `json:"status,omitempty" validate:"omitempty,oneof=active canceled"`
	Amount   *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
}

// IsEmpty true, если не передано ни одного поля
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Date == nil && r.Time == nil && r.Sport == nil &&
		r.Customer == nil && r.Status == nil && r.Amount == nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"ownerId"`
	UserID        *string    `json:"userId,omitempty"`
	Date          string     `json:"date"` // "2025-10-15"
	Time          string     `json:"time"` // "06:00-07:00"
	Sport         string     `json:"sport"`
	Customer      string     `json:"customer"`
	CustomerPhone *string    `json:"customerPhone,omitempty"`
	Status        string     `json:"status"`
	Amount        *float64   `json:"amount,omitempty"`
	Source        string     `json:"source"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	CanceledAt    *time.Time `json:"canceledAt,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		UserID:        b.UserID,
		Date:          b.Date.Format(domain.DateFormat),
		Time:          b.Time,
		Sport:         string(b.Sport),
		Customer:      b.Customer,
		CustomerPhone: b.CustomerPhone,
		Status:        string(b.Status),
		Amount:        b.Amount,
		Source:        string(b.Source),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CanceledAt:    b.CanceledAt,
	}
}

// FromDomainBookingList конвертирует список; пустой список отдается как [], не null
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: responses}
}
