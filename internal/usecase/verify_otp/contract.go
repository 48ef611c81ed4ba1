package verify_otp

import (
	"context"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/service/sessions"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByExternalUID(ctx context.Context, uid string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SessionService выдача сессий
type SessionService interface {
	Issue(ctx context.Context, subject string, role domain.Role, ttl time.Duration) (*sessions.Issued, error)
}

// PhoneNormalizer приводит телефон к E.164
type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
