package domain

import "time"

// User пользователь витрины, подтвердивший телефон
type User struct {
	ID          string
	ExternalUID string // uid у провайдера OTP
	Phone       string // E.164
	Name        string
	IsVerified  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
