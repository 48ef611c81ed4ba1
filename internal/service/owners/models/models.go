package models

import "github.com/KrishRally/Sportitup/internal/domain"

// LoginRequest вход владельца
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// OwnerResponse данные владельца без учетных данных
type OwnerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func FromDomainOwner(o *domain.Owner) *OwnerResponse {
	if o == nil {
		return nil
	}
	return &OwnerResponse{ID: o.ID, Email: o.Email, Name: o.Name}
}
