package list_owner_bookings

import (
	"context"

	"github.com/KrishRally/Sportitup/internal/service/bookings/models"
)

type BookingService interface {
	ListForOwner(ctx context.Context, ownerID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
