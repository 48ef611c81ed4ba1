package create_booking

import (
	"context"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория ручных блокировок
type BlockRepository interface {
	List(ctx context.Context, ownerID string, date time.Time) ([]*domain.AvailabilityBlock, error)
}

// UserRepository пользователи витрины
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// VenueCatalog каталог площадок. Для онлайн бронирования площадка обязана существовать.
type VenueCatalog interface {
	Get(id string) (*domain.Venue, error)
}

// PhoneNormalizer приводит телефон к E.164
type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}

// Metrics счетчик созданных бронирований
type Metrics interface {
	BookingCreated(source string)
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
