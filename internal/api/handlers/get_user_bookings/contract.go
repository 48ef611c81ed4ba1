package get_user_bookings

import (
	"context"

	"github.com/KrishRally/Sportitup/internal/service/bookings/models"
)

type BookingService interface {
	ListForUser(ctx context.Context, userID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
