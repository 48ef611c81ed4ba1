package owners

import (
	"context"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/service/sessions"
)

// OwnerRepository реестр владельцев
type OwnerRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Owner, error)
	GetByID(ctx context.Context, id string) (*domain.Owner, error)
}

// SessionService выдача и отзыв сессий
type SessionService interface {
	Issue(ctx context.Context, subject string, role domain.Role, ttl time.Duration) (*sessions.Issued, error)
	Revoke(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
