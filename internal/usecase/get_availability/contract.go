package get_availability

import (
	"context"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория ручных блокировок
type BlockRepository interface {
	List(ctx context.Context, ownerID string, date time.Time) ([]*domain.AvailabilityBlock, error)
}

// VenueCatalog каталог площадок
type VenueCatalog interface {
	ResolveOwner(venueID string) (string, *domain.Venue, error)
	OwnerSlots(ownerID string) []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
