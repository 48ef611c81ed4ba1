package domain

import (
	"time"

	"github.com/KrishRally/Sportitup/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive   BookingStatus = "active"
	StatusCanceled BookingStatus = "canceled"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	return s == StatusActive || s == StatusCanceled
}

// Sport вид спорта, который можно забронировать
type Sport string

const (
	SportCricket    Sport = "cricket"
	SportFootball   Sport = "football"
	SportPickleball Sport = "pickleball"
)

func (s Sport) IsValid() bool {
	switch s {
	case SportCricket, SportFootball, SportPickleball:
		return true
	}
	return false
}

// BookingSource откуда пришло бронирование
type BookingSource string

const (
	SourceOnline BookingSource = "online"
	SourceAdmin  BookingSource = "admin"
)

// Booking represents a slot booking at one of the owner's venues
type Booking struct {
	ID            string
	OwnerID       string
	UserID        *string // пользователь витрины (только для online)
	Date          time.Time
	Time          string // метка слота, например "06:00-07:00"
	Sport         Sport
	Customer      string
	CustomerPhone *string
	Status        BookingStatus
	Amount        *float64 // предоплата, nil = не указана
	Source        BookingSource

	CanceledAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the booking holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// Cancel переводит бронирование в canceled. Повторная отмена ничего не меняет.
// Возвращает true, если статус изменился.
func (b *Booking) Cancel(now time.Time) bool {
	if b.Status == StatusCanceled {
		return false
	}
	b.Status = StatusCanceled
	b.CanceledAt = &now
	b.UpdatedAt = now
	return true
}

// AmountOrZero сумма для статистики (отсутствующая сумма = 0)
func (b *Booking) AmountOrZero() float64 {
	if b.Amount == nil {
		return 0
	}
	return *b.Amount
}

// Clone возвращает копию, не разделяющую указатели с оригиналом
func (b *Booking) Clone() *Booking {
	c := *b
	if b.UserID != nil {
		v := *b.UserID
		c.UserID = &v
	}
	if b.CustomerPhone != nil {
		v := *b.CustomerPhone
		c.CustomerPhone = &v
	}
	if b.Amount != nil {
		v := *b.Amount
		c.Amount = &v
	}
	if b.CanceledAt != nil {
		v := *b.CanceledAt
		c.CanceledAt = &v
	}
	return &c
}

// OwnerBookingsFilter фильтр для получения бронирований владельца
type OwnerBookingsFilter struct {
	OwnerID         string     // Обязательный параметр
	Date            *time.Time // Фильтр по дате (опционально)
	IncludeCanceled bool       // Включать ли отмененные бронирования
}

// CustomerBookingsFilter бронирования пользователя витрины: по UserID или по телефону
type CustomerBookingsFilter struct {
	UserID string
	Phone  *string
}

// SlotTaken проверяет, занят ли слот активным бронированием.
// Метки времени сравниваются по началу ("08:00-09:00" и "08:00" - один слот), прочие целиком.
// excludeID исключает само редактируемое бронирование.
func SlotTaken(bookings []*Booking, slot string, excludeID string) bool {
	for _, b := range bookings {
		if b.ID == excludeID || !b.IsActive() {
			continue
		}
		if types.SameSlot(b.Time, slot) {
			return true
		}
	}
	return false
}
