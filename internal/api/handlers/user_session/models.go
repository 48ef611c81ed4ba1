package user_session

import "github.com/KrishRally/Sportitup/internal/service/users/models"

// SessionResponse {"user": {...}} или {"user": null}
type SessionResponse struct {
	User *models.UserResponse `json:"user"`
}
