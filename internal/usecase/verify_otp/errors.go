package verify_otp

import "errors"

var (
	// ErrInvalidPhone телефон не распознан
	ErrInvalidPhone = errors.New("verify_otp: invalid phone number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("verify_otp: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_otp: internal error")
)
