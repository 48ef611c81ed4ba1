package user_session

import (
	"context"

	"github.com/KrishRally/Sportitup/internal/service/users/models"
)

type UserService interface {
	GetByID(ctx context.Context, id string) (*models.UserResponse, error)
}

type SessionRevoker interface {
	Revoke(ctx context.Context, token string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
