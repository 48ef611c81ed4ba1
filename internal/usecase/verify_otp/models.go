package verify_otp

import (
	"time"

	"github.com/KrishRally/Sportitup/internal/service/users/models"
)

// DefaultUserName имя нового пользователя, если оно не передано
const DefaultUserName = "User"

// Request результат проверки кода у внешнего провайдера
type Request struct {
	UID   string `json:"uid" validate:"required,max=128"`
	Name  string `json:"name" validate:"max=100"`
	Phone string `json:"phone" validate:"required,phone"`
}

// Response пользователь и его новая сессия
type Response struct {
	User      *models.UserResponse
	Token     string
	ExpiresAt time.Time
	Created   bool
}
