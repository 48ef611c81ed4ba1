package users

import (
	"context"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// UserRepository интерфейс репозитория пользователей витрины
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
