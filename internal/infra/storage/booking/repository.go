package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/pkg/dbmetrics"
	"github.com/KrishRally/Sportitup/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"owner_id",
	"user_id",
	"booking_date",
	"time_slot",
	"sport",
	"customer",
	"customer_phone",
	"status",
	"amount",
	"source",
	"canceled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями в postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"owner_id",
			"user_id",
			"booking_date",
			"time_slot",
			"sport",
			"customer",
			"customer_phone",
			"status",
			"amount",
			"source",
		).
		Values(
			booking.ID,
			booking.OwnerID,
			booking.UserID,
			booking.Date,
			booking.Time,
			booking.Sport,
			booking.Customer,
			booking.CustomerPhone,
			booking.Status,
			booking.Amount,
			booking.Source,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created := booking.Clone()
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}
		if storage.IsSerializationFailure(err) {
			return nil, storage.ErrSerialization
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до конца изменения
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, storage.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", storage.ErrScanRow, err)
	}

	return booking, nil
}

// Update перезаписывает изменяемые поля. id, owner_id, source и created_at не меняются.
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("booking_date", booking.Date).
		Set("time_slot", booking.Time).
		Set("sport", booking.Sport).
		Set("customer", booking.Customer).
		Set("customer_phone", booking.CustomerPhone).
		Set("status", booking.Status).
		Set("amount", booking.Amount).
		Set("canceled_at", booking.CanceledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", storage.ErrBuildQuery, err)
	}

	updated, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, storage.ErrBookingNotFound
	}
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}
		if storage.IsSerializationFailure(err) {
			return nil, storage.ErrSerialization
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", storage.ErrExecQuery, err)
	}

	return updated, nil
}

// GetByOwnerWithFilter получает бронирования владельца
//
// Примеры использования:
//
// 1. Активные бронирования на дату (занятые слоты):
//    filter := domain.OwnerBookingsFilter{OwnerID: "owner-1", Date: &date}
//
// 2. Все бронирования владельца включая отмененные (админка):
//    filter := domain.OwnerBookingsFilter{OwnerID: "owner-1", IncludeCanceled: true}
func (r *Repository) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": filter.OwnerID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}

	if !filter.IncludeCanceled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusActive})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC", "time_slot ASC", "created_at ASC")

	// Если используется транзакция, добавляем FOR UPDATE для блокировки
	// (только для конкретной даты - для usecase создания бронирования)
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if storage.IsSerializationFailure(err) {
			return nil, storage.ErrSerialization
		}
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCustomer бронирования пользователя витрины по user_id или телефону
func (r *Repository) GetByCustomer(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	or := squirrel.Or{}
	if filter.UserID != "" {
		or = append(or, squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.Phone != nil && *filter.Phone != "" {
		or = append(or, squirrel.Eq{"customer_phone": *filter.Phone})
	}
	if len(or) == 0 {
		return []*domain.Booking{}, nil
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(or).
		OrderBy("booking_date ASC", "time_slot ASC", "created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.ID,
		&booking.OwnerID,
		&booking.UserID,
		&booking.Date,
		&booking.Time,
		&booking.Sport,
		&booking.Customer,
		&booking.CustomerPhone,
		&booking.Status,
		&booking.Amount,
		&booking.Source,
		&booking.CanceledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	booking.Date = domain.DateOnly(booking.Date)
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", storage.ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", storage.ErrScanRow, err)
	}

	return bookings, nil
}
