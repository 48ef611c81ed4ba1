package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или принадлежит другому владельцу
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidStatusTransition отмененное бронирование нельзя вернуть в active
	ErrInvalidStatusTransition = errors.New("bookings: canceled booking cannot be reactivated")

	// ErrSlotNotAvailable возвращается, когда новый слот уже занят другим бронированием
	ErrSlotNotAvailable = errors.New("bookings: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
