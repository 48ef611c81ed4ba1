package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KrishRally/Sportitup/internal/api"
	"github.com/KrishRally/Sportitup/internal/config"
	"github.com/KrishRally/Sportitup/internal/domain"
	sessionStore "github.com/KrishRally/Sportitup/internal/infra/session"
	blockRepo "github.com/KrishRally/Sportitup/internal/infra/storage/block"
	bookingRepo "github.com/KrishRally/Sportitup/internal/infra/storage/booking"
	"github.com/KrishRally/Sportitup/internal/infra/storage/memory"
	userRepo "github.com/KrishRally/Sportitup/internal/infra/storage/user"
	availabilityService "github.com/KrishRally/Sportitup/internal/service/availability"
	bookingsService "github.com/KrishRally/Sportitup/internal/service/bookings"
	ownersService "github.com/KrishRally/Sportitup/internal/service/owners"
	sessionsService "github.com/KrishRally/Sportitup/internal/service/sessions"
	usersService "github.com/KrishRally/Sportitup/internal/service/users"
	venuesService "github.com/KrishRally/Sportitup/internal/service/venues"
	createBookingUC "github.com/KrishRally/Sportitup/internal/usecase/create_booking"
	getAvailabilityUC "github.com/KrishRally/Sportitup/internal/usecase/get_availability"
	getStatsUC "github.com/KrishRally/Sportitup/internal/usecase/get_stats"
	verifyOTPUC "github.com/KrishRally/Sportitup/internal/usecase/verify_otp"
	"github.com/KrishRally/Sportitup/pkg/dbmetrics"
	"github.com/KrishRally/Sportitup/pkg/metrics"
	"github.com/KrishRally/Sportitup/pkg/phone"
	"github.com/KrishRally/Sportitup/pkg/sessiontoken"
	"github.com/KrishRally/Sportitup/pkg/txmanager"
	"github.com/KrishRally/Sportitup/pkg/validation"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type bookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error)
	GetByCustomer(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error)
}

type blockRepository interface {
	List(ctx context.Context, ownerID string, date time.Time) ([]*domain.AvailabilityBlock, error)
	Add(ctx context.Context, block *domain.AvailabilityBlock) error
	Remove(ctx context.Context, ownerID string, date time.Time, slot string) error
}

type userRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByExternalUID(ctx context.Context, uid string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage выбранный драйвер хранилища
type storage struct {
	bookings bookingRepository
	blocks   blockRepository
	users    userRepository
	tx       transactionManager

	// memory только для драйвера memory (сброс демо-данных)
	memory *memory.Store
}

// App собранный сервис: HTTP handler и ресурсы, которые нужно закрыть
type App struct {
	Handler http.Handler

	closers []func() error
	logger  Logger
}

// New собирает зависимости по конфигурации. m == nil - без метрик.
func New(ctx context.Context, cfg *config.Config, m *metrics.Metrics, logger Logger) (*App, error) {
	a := &App{logger: logger}

	// 1. Хранилище
	store, err := a.openStorage(ctx, cfg, m)
	if err != nil {
		a.Close()
		return nil, err
	}

	// 2. Сессии
	sessions, err := a.openSessions(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	// 3. Каталоги из конфигурации
	owners, err := ownersService.FromConfig(cfg.Owners)
	if err != nil {
		a.Close()
		return nil, err
	}
	venues, err := venuesService.FromConfig(cfg.Venues.Catalog)
	if err != nil {
		a.Close()
		return nil, err
	}
	location, err := cfg.Stats.Location()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%w: stats.timezone: %v", config.ErrInvalidConfig, err)
	}

	validator := validation.New()
	phones := phone.NewNormalizer(cfg.Auth.PhoneRegion)
	venueSvc := venuesService.NewService(venues, cfg.Venues.FallbackOwnerID)
	rejectConflicts := cfg.Booking.RejectsConflicts()
	if !rejectConflicts {
		logger.Warn("Booking conflict check disabled: duplicate slot submissions will be accepted")
	}

	// 4. Сервисы и use cases
	svc := api.Services{
		Owners:       ownersService.NewService(memory.NewOwnerRepository(owners), sessions, validator, cfg.Auth.OwnerSessionTTL(), logger),
		Sessions:     sessions,
		Users:        usersService.NewService(store.users, logger),
		Venues:       venueSvc,
		Bookings:     bookingsService.NewService(store.bookings, store.users, store.tx, validator, rejectConflicts, logger),
		Availability: availabilityService.NewService(store.blocks, validator, logger),
		GetAvailability: getAvailabilityUC.NewUseCase(
			store.bookings,
			store.blocks,
			venueSvc,
			logger,
		),
		CreateBooking: createBookingUC.NewUseCase(
			store.bookings,
			store.blocks,
			store.users,
			venueSvc,
			phones,
			store.tx,
			m,
			validator,
			rejectConflicts,
			logger,
		),
		GetStats: getStatsUC.NewUseCase(store.bookings, location, logger),
		VerifyOTP: verifyOTPUC.NewUseCase(
			store.users,
			sessions,
			phones,
			store.tx,
			validator,
			cfg.Auth.UserSessionTTL(),
			logger,
		),
	}

	if cfg.Demo.EnableReset && store.memory != nil {
		svc.Resetter = store.memory
		logger.Info("Demo reset endpoint enabled")
	}

	// 5. HTTP
	a.Handler = api.NewRouter(svc, api.Options{
		CookieSecure: cfg.Auth.CookieSecure,
		CORSOrigins:  cfg.Auth.CORSOrigins,
		Metrics:      m,
		MetricsPath:  cfg.Metrics.Path,
		ServiceName:  cfg.Metrics.ServiceName,
	}, logger)

	return a, nil
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*storage, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		store := memory.NewStore()
		a.logger.Info("Using in-memory storage: data is lost on restart")
		return &storage{
			bookings: memory.NewBookingRepository(store),
			blocks:   memory.NewBlockRepository(store),
			users:    memory.NewUserRepository(store),
			tx:       store,
			memory:   store,
		}, nil
	}

	db, err := OpenDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	a.logger.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopCh := make(chan struct{})
	a.closers = append(a.closers, func() error {
		close(stopCh)
		return nil
	})
	wrapped := dbmetrics.WrapWithDefault(db, m, cfg.Metrics.ServiceName, stopCh)

	return &storage{
		bookings: bookingRepo.NewRepository(wrapped),
		blocks:   blockRepo.NewRepository(wrapped),
		users:    userRepo.NewRepository(wrapped),
		tx:       txmanager.NewTransactionManager(wrapped),
	}, nil
}

func (a *App) openSessions(ctx context.Context, cfg *config.Config, logger Logger) (*sessionsService.Service, error) {
	tokens, err := sessiontoken.NewManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer)
	if err != nil {
		return nil, err
	}

	var store sessionsService.Store
	switch cfg.Auth.SessionStore {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis: ping %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("Sessions stored in redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		store = sessionStore.NewRedisStore(client)
	default:
		store = sessionStore.NewMemoryStore()
	}

	return sessionsService.NewService(store, tokens, logger), nil
}

// OpenDatabase открывает пул postgres и проверяет соединение
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}
	return db, nil
}

// Close освобождает ресурсы в обратном порядке
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("Failed to release resource: %v", err)
		}
	}
	a.closers = nil
}
