package middleware

import (
	"context"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// SessionAuthenticator проверка токена сессии
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string, role domain.Role) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
