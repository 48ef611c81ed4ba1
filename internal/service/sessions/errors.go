package sessions

import "errors"

var (
	// ErrUnauthorized токен отсутствует, невалиден, истек, отозван или выдан другой роли
	ErrUnauthorized = errors.New("sessions: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
