package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/internal/service/bookings/models"
	"github.com/KrishRally/Sportitup/pkg/validation"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo     BookingRepository
	userRepo        UserRepository
	txManager       TransactionManager
	validator       *validation.Validator
	rejectConflicts bool
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// rejectConflicts - проверять занятость слота при переносе бронирования.
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	validator *validation.Validator,
	rejectConflicts bool,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		validator:       validator,
		rejectConflicts: rejectConflicts,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ListForOwner все бронирования владельца (включая отмененные), по дате и времени
func (s *Service) ListForOwner(ctx context.Context, ownerID string) (*models.BookingListResponse, error) {
	s.logger.Info("ListOwnerBookings: fetching bookings for owner=%s", ownerID)

	bookings, err := s.bookingRepo.GetByOwnerWithFilter(ctx, domain.OwnerBookingsFilter{
		OwnerID:         ownerID,
		IncludeCanceled: true,
	})
	if err != nil {
		s.logger.Error("ListOwnerBookings: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListForOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOwnerBookings: fetched %d bookings for owner=%s", len(bookings), ownerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetForOwner бронирование владельца по ID
func (s *Service) GetForOwner(ctx context.Context, ownerID, bookingID string) (*models.BookingResponse, error) {
	booking, err := s.getOwned(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// ListForUser бронирования пользователя витрины: привязанные к нему
// или сделанные на его телефон
func (s *Service) ListForUser(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("ListUserBookings: fetching bookings for user=%s", userID)

	filter := domain.CustomerBookingsFilter{UserID: userID}

	user, err := s.userRepo.GetByID(ctx, userID)
	switch {
	case err == nil:
		if user.Phone != "" {
			phone := user.Phone
			filter.Phone = &phone
		}
	case errors.Is(err, storage.ErrUserNotFound):
		s.logger.Warn("ListUserBookings: user=%s not found, matching by id only", userID)
	default:
		s.logger.Error("ListUserBookings: failed to get user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListForUser - get user: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, filter)
	if err != nil {
		s.logger.Error("ListUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUserBookings: fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// Update правка бронирования владельцем.
// Чужое или несуществующее бронирование - ErrBookingNotFound.
// Статус: active -> canceled разрешено, canceled -> active запрещено.
func (s *Service) Update(ctx context.Context, ownerID, bookingID string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateBooking: owner=%s booking id=%s", ownerID, bookingID)

	// 1. Валидация переданных полей
	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("UpdateBooking: validation failed for booking id=%s: %v", bookingID, err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Чтение, проверка и запись в одной транзакции
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getOwned(txCtx, ownerID, bookingID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		slotMoved := false

		// 2.1. Применяем изменения
		if req.Date != nil {
			date, err := domain.ParseDate(*req.Date)
			if err != nil {
				return fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
			}
			slotMoved = slotMoved || !domain.SameDay(date, booking.Date)
			booking.Date = date
		}
		if req.Time != nil {
			slot := strings.TrimSpace(*req.Time)
			slotMoved = slotMoved || slot != booking.Time
			booking.Time = slot
		}
		if req.Sport != nil {
			booking.Sport = domain.Sport(*req.Sport)
		}
		if req.Customer != nil {
			booking.Customer = strings.TrimSpace(*req.Customer)
		}
		if req.Amount != nil {
			amount := *req.Amount
			booking.Amount = &amount
		}
		if req.Status != nil {
			switch domain.BookingStatus(*req.Status) {
			case domain.StatusCanceled:
				booking.Cancel(now)
			case domain.StatusActive:
				if !booking.IsActive() {
					s.logger.Warn("UpdateBooking: attempt to reactivate canceled booking id=%s", bookingID)
					return ErrInvalidStatusTransition
				}
			}
		}

		// 2.2. Перенос на занятый слот
		if slotMoved && s.rejectConflicts && booking.IsActive() {
			date := booking.Date
			sameDay, err := s.bookingRepo.GetByOwnerWithFilter(txCtx, domain.OwnerBookingsFilter{
				OwnerID: ownerID,
				Date:    &date,
			})
			if err != nil {
				if storage.IsSerializationFailure(err) {
					return ErrSlotNotAvailable
				}
				return fmt.Errorf("%w: list bookings for conflict check: %v", ErrInternal, err)
			}
			if domain.SlotTaken(sameDay, booking.Time, booking.ID) {
				s.logger.Warn("UpdateBooking: slot %s %s already taken, booking id=%s",
					booking.Date.Format(domain.DateFormat), booking.Time, bookingID)
				return ErrSlotNotAvailable
			}
		}

		booking.UpdatedAt = now
		updated, err := s.bookingRepo.Update(txCtx, booking)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			if errors.Is(err, storage.ErrDuplicate) || storage.IsSerializationFailure(err) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		if storage.IsSerializationFailure(err) {
			s.logger.Warn("UpdateBooking: commit lost to a concurrent change, booking id=%s: %v", bookingID, err)
			return nil, ErrSlotNotAvailable
		}
		if !isDomainError(err) {
			s.logger.Error("UpdateBooking: failed to update booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateBooking: booking id=%s updated, status=%s", bookingID, result.Status)
	return models.FromDomainBooking(result), nil
}

// Cancel отменяет бронирование владельца. Повторная отмена - не ошибка,
// время первой отмены сохраняется.
func (s *Service) Cancel(ctx context.Context, ownerID, bookingID string) error {
	s.logger.Info("CancelBooking: owner=%s booking id=%s", ownerID, bookingID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getOwned(txCtx, ownerID, bookingID)
		if err != nil {
			return err
		}

		if !booking.Cancel(s.timeProvider.Now()) {
			s.logger.Info("CancelBooking: booking id=%s already canceled", bookingID)
			return nil
		}

		if _, err := s.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			s.logger.Error("CancelBooking: failed to cancel booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return err
	}

	s.logger.Info("CancelBooking: booking id=%s canceled", bookingID)
	return nil
}

// Вспомогательные методы

// getOwned бронирование владельца; чужое не отличается от отсутствующего
func (s *Service) getOwned(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("getOwned: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.OwnerID != ownerID {
		s.logger.Warn("getOwned: booking id=%s belongs to another owner, requested by owner=%s", bookingID, ownerID)
		return nil, ErrBookingNotFound
	}

	return booking, nil
}

func (s *Service) validateUpdate(req *models.UpdateBookingRequest) error {
	if req == nil || req.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Customer != nil && strings.TrimSpace(*req.Customer) == "" {
		return fmt.Errorf("%w: customer: is required", ErrInvalidInput)
	}
	if req.Time != nil && strings.TrimSpace(*req.Time) == "" {
		return fmt.Errorf("%w: time: is required", ErrInvalidInput)
	}
	if req.Sport != nil && !domain.Sport(*req.Sport).IsValid() {
		return fmt.Errorf("%w: sport: must be one of: cricket, football, pickleball", ErrInvalidInput)
	}
	if req.Status != nil && !domain.BookingStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: status: must be one of: active, canceled", ErrInvalidInput)
	}
	return nil
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrInvalidStatusTransition) ||
		errors.Is(err, ErrSlotNotAvailable) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInternal)
}
