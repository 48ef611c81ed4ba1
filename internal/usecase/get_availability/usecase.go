package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/service/venues"
)

// UseCase use case получения занятых слотов на дату. Без побочных эффектов.
type UseCase struct {
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	venues      VenueCatalog
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	venues VenueCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		venues:      venues,
		logger:      logger,
	}
}

// Execute выполняет use case получения занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: owner=%s, venue=%s, date=%s", req.OwnerID, req.VenueID, req.Date)

	// 2. Определяем владельца и сетку слотов
	ownerID := req.OwnerID
	var venue *domain.Venue
	if req.IsPublic() {
		ownerID, venue, err = uc.venues.ResolveOwner(req.VenueID)
		if err != nil {
			if errors.Is(err, venues.ErrVenueNotFound) {
				uc.logger.Warn("GetAvailability: venue id=%s not found", req.VenueID)
				return nil, ErrVenueNotFound
			}
			return nil, fmt.Errorf("%w: resolve venue: %v", ErrInternal, err)
		}
	}

	var slots []string
	if venue != nil {
		slots = venue.HourlySlots()
	} else {
		slots = uc.venues.OwnerSlots(ownerID)
	}

	// 3. Ручные блокировки
	blocks, err := uc.blockRepo.List(ctx, ownerID, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list blocks for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: list blocks: %v", ErrInternal, err)
	}

	// 4. Активные бронирования на дату
	bookings, err := uc.bookingRepo.GetByOwnerWithFilter(ctx, domain.OwnerBookingsFilter{
		OwnerID: ownerID,
		Date:    &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
	}

	// 5. Объединение
	blocked := mergeBlocked(blocks, bookings)

	uc.logger.Info("GetAvailability: owner=%s date=%s blocked=%d (blocks=%d, bookings=%d)",
		ownerID, req.Date, len(blocked), len(blocks), len(bookings))

	return &Response{
		Date:         req.Date,
		VenueID:      req.VenueID,
		OwnerID:      ownerID,
		Slots:        slots,
		Blocked:      blocked,
		BlockedHours: startHours(blocked),
	}, nil
}
