package availability

import (
	"context"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// BlockRepository ручные блокировки слотов
type BlockRepository interface {
	Add(ctx context.Context, block *domain.AvailabilityBlock) error
	Remove(ctx context.Context, ownerID string, date time.Time, slot string) error
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

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
