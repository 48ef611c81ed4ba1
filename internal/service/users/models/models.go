package models

import (
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// UserResponse пользователь витрины
type UserResponse struct {
	ID         string    `json:"id"`
	UID        string    `json:"uid,omitempty"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		UID:        u.ExternalUID,
		Phone:      u.Phone,
		Name:       u.Name,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
