package get_stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// UseCase статистика заработка владельца. Считается заново при каждом вызове.
type UseCase struct {
	bookingRepo  BookingRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase location определяет границы "сегодня"; nil - UTC
func NewUseCase(bookingRepo BookingRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case. Отмененные бронирования не учитываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.OwnerID) == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	uc.logger.Info("GetStats: owner=%s", req.OwnerID)

	bookings, err := uc.bookingRepo.GetByOwnerWithFilter(ctx, domain.OwnerBookingsFilter{
		OwnerID:         req.OwnerID,
		IncludeCanceled: false,
	})
	if err != nil {
		uc.logger.Error("GetStats: failed to get bookings for owner=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}

	today := calendarDay(uc.timeProvider.Now(), uc.location)
	todayBucket := aggregate([]period{{
		key:   today.Format(domain.DateFormat),
		start: today,
		end:   today.AddDate(0, 0, 1),
	}}, active)[0]

	stats := &domain.Stats{
		Today:   todayBucket,
		Daily:   aggregate(dailyPeriods(today), active),
		Weekly:  aggregate(weeklyPeriods(today), active),
		Monthly: aggregate(monthlyPeriods(today), active),
	}

	uc.logger.Info("GetStats: owner=%s today bookings=%d earnings=%.2f",
		req.OwnerID, stats.Today.Bookings, stats.Today.Earnings)
	return FromDomainStats(stats), nil
}
