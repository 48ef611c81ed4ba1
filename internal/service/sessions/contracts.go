package sessions

import (
	"context"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/pkg/sessiontoken"
)

// Store хранилище сессий (memory или redis)
type Store interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenManager подпись и проверка токенов сессии
type TokenManager interface {
	Issue(subject, role, sessionID string, issuedAt, expiresAt time.Time) (string, error)
	Parse(token string) (*sessiontoken.Claims, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
