package owner_session

import (
	"context"

	"github.com/KrishRally/Sportitup/internal/service/owners"
	"github.com/KrishRally/Sportitup/internal/service/owners/models"
)

type OwnerService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*owners.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
