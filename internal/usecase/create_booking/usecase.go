package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/internal/service/bookings/models"
	"github.com/KrishRally/Sportitup/internal/service/venues"
	"github.com/KrishRally/Sportitup/pkg/validation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	blockRepo       BlockRepository
	userRepo        UserRepository
	venues          VenueCatalog
	phones          PhoneNormalizer
	txManager       TransactionManager
	metrics         Metrics
	validator       *validation.Validator
	rejectConflicts bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// rejectConflicts = false отключает проверку занятости (два одинаковых запроса создадут два бронирования).
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	userRepo UserRepository,
	venues VenueCatalog,
	phones PhoneNormalizer,
	txManager TransactionManager,
	metrics Metrics,
	validator *validation.Validator,
	rejectConflicts bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		blockRepo:       blockRepo,
		userRepo:        userRepo,
		venues:          venues,
		phones:          phones,
		txManager:       txManager,
		metrics:         metrics,
		validator:       validator,
		rejectConflicts: rejectConflicts,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка слота и вставка выполняются в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	source := req.Source()
	uc.logger.Info("CreateBooking: source=%s, owner=%s, venue=%s, date=%s, time=%s, sport=%s",
		source, req.OwnerID, req.VenueID, req.Date, req.Time, req.Sport)

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	sport := domain.Sport(req.Sport)

	// 2. Владелец: из сессии или по площадке
	ownerID := req.OwnerID
	if source == domain.SourceOnline {
		venue, err := uc.venues.Get(req.VenueID)
		if err != nil {
			if errors.Is(err, venues.ErrVenueNotFound) {
				uc.logger.Warn("CreateBooking: venue id=%s not found", req.VenueID)
				return nil, ErrVenueNotFound
			}
			return nil, fmt.Errorf("%w: get venue: %v", ErrInternal, err)
		}
		if !venue.OffersSport(sport) {
			uc.logger.Warn("CreateBooking: venue id=%s does not offer %s", venue.ID, sport)
			return nil, ErrSportNotOffered
		}
		ownerID = venue.OwnerID
	}

	// 3. Телефон: нормализуем, если номер распознан; иначе храним как ввели
	var customerPhone *string
	if req.CustomerPhone != nil {
		p := *req.CustomerPhone
		if normalized, err := uc.phones.Normalize(p); err == nil {
			p = normalized
		}
		customerPhone = &p
	}

	// 4. Привязка пользователя витрины
	var userID *string
	if source == domain.SourceOnline && req.UserID != nil && *req.UserID != "" {
		user, err := uc.userRepo.GetByID(ctx, *req.UserID)
		switch {
		case err == nil:
			id := user.ID
			userID = &id
			if customerPhone == nil && user.Phone != "" {
				p := user.Phone
				customerPhone = &p
			}
		case errors.Is(err, storage.ErrUserNotFound):
			uc.logger.Warn("CreateBooking: session user id=%s not found, booking without link", *req.UserID)
		default:
			uc.logger.Error("CreateBooking: failed to get user id=%s: %v", *req.UserID, err)
			return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
		}
	}

	var result *domain.Booking

	// 5. Проверка слота и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if uc.rejectConflicts {
			// 5.1. Активные бронирования на дату (FOR UPDATE в postgres)
			existing, err := uc.bookingRepo.GetByOwnerWithFilter(txCtx, domain.OwnerBookingsFilter{
				OwnerID: ownerID,
				Date:    &date,
			})
			if err != nil {
				return uc.storageError("get bookings", err)
			}

			// 5.2. Ручные блокировки нужны только для витрины
			var blocks []*domain.AvailabilityBlock
			if source == domain.SourceOnline {
				blocks, err = uc.blockRepo.List(txCtx, ownerID, date)
				if err != nil {
					return uc.storageError("get blocks", err)
				}
			}

			if slotConflict(source, req.Time, blocks, existing) {
				uc.logger.Warn("CreateBooking: slot %s %s is taken for owner=%s", req.Date, req.Time, ownerID)
				return ErrSlotNotAvailable
			}
		}

		// 5.3. Создаем бронирование
		booking := &domain.Booking{
			ID:            uuid.NewString(),
			OwnerID:       ownerID,
			UserID:        userID,
			Date:          date,
			Time:          req.Time,
			Sport:         sport,
			Customer:      req.Customer,
			CustomerPhone: customerPhone,
			Status:        domain.StatusActive,
			Amount:        req.Amount,
			Source:        source,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return uc.storageError("create booking", err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		if storage.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: commit lost to a concurrent booking on %s: %v", req.Date, err)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
	}

	uc.metrics.BookingCreated(string(source))
	uc.logger.Info("CreateBooking: successfully created booking id=%s for owner=%s", result.ID, ownerID)

	return &Response{Booking: models.FromDomainBooking(result)}, nil
}

// storageError ошибка хранилища внутри транзакции. Конфликт сериализации означает,
// что параллельный запрос занял дату раньше.
func (uc *UseCase) storageError(op string, err error) error {
	if storage.IsSerializationFailure(err) {
		uc.logger.Warn("CreateBooking: %s: concurrent booking won the slot: %v", op, err)
		return ErrSlotNotAvailable
	}
	uc.logger.Error("CreateBooking: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
