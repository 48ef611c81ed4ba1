package memory

import (
	"context"
	"sort"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
)

// BookingRepository бронирования в памяти
type BookingRepository struct {
	store *Store
	now   func() time.Time
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store, now: time.Now}
}

// Create сохраняет бронирование. ID назначает вызывающий код.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.bookingByID[booking.ID]; exists {
		return nil, storage.ErrDuplicate
	}

	now := r.now()
	stored := booking.Clone()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.store.bookings = append(r.store.bookings, stored)
	r.store.bookingByID[stored.ID] = stored

	return stored.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.bookingByID[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	return b.Clone(), nil
}

// Update перезаписывает изменяемые поля. ID, OwnerID, Source и CreatedAt не меняются.
func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.bookingByID[booking.ID]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}

	next := booking.Clone()
	stored.Date = next.Date
	stored.Time = next.Time
	stored.Sport = next.Sport
	stored.Customer = next.Customer
	stored.CustomerPhone = next.CustomerPhone
	stored.Status = next.Status
	stored.Amount = next.Amount
	stored.CanceledAt = next.CanceledAt
	stored.UpdatedAt = r.now()

	return stored.Clone(), nil
}

// GetByOwnerWithFilter бронирования владельца, отсортированные по дате и времени
func (r *BookingRepository) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		if b.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Date != nil && !domain.SameDay(b.Date, *filter.Date) {
			continue
		}
		if !filter.IncludeCanceled && !b.IsActive() {
			continue
		}
		result = append(result, b.Clone())
	}

	sortBookings(result)
	return result, nil
}

// GetByCustomer бронирования пользователя витрины: по UserID или телефону
func (r *BookingRepository) GetByCustomer(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		byUser := filter.UserID != "" && b.UserID != nil && *b.UserID == filter.UserID
		byPhone := filter.Phone != nil && *filter.Phone != "" && b.CustomerPhone != nil && *b.CustomerPhone == *filter.Phone
		if byUser || byPhone {
			result = append(result, b.Clone())
		}
	}

	sortBookings(result)
	return result, nil
}

// sortBookings стабильная сортировка: дата, время; при равенстве порядок вставки
func sortBookings(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		di, dj := bookings[i].Date.Format(domain.DateFormat), bookings[j].Date.Format(domain.DateFormat)
		if di != dj {
			return di < dj
		}
		return bookings[i].Time < bookings[j].Time
	})
}
