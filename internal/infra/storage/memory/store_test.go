package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage"
	"github.com/KrishRally/Sportitup/pkg/ptr"
)

var day = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newBooking(id, owner, slot string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		OwnerID:  owner,
		Date:     day,
		Time:     slot,
		Sport:    domain.SportCricket,
		Customer: "Asha",
		Status:   status,
		Source:   domain.SourceAdmin,
	}
}

func TestBookingRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(NewStore())

	created, err := repo.Create(ctx, newBooking("b1", "owner-1", "08:00-09:00", domain.StatusActive))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.Create(ctx, newBooking("b1", "owner-1", "09:00-10:00", domain.StatusActive))
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	// изменение копии не влияет на хранилище
	created.Customer = "changed"
	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Customer)

	got.Amount = ptr.Ptr(750.0)
	got.OwnerID = "owner-2"
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, 750.0, *updated.Amount)
	assert.Equal(t, "owner-1", updated.OwnerID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)

	_, err = repo.Update(ctx, newBooking("missing", "owner-1", "x", domain.StatusActive))
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestBookingRepository_GetByOwnerWithFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(NewStore())

	_, _ = repo.Create(ctx, newBooking("b1", "owner-1", "10:00-11:00", domain.StatusActive))
	_, _ = repo.Create(ctx, newBooking("b2", "owner-1", "08:00-09:00", domain.StatusCanceled))
	_, _ = repo.Create(ctx, newBooking("b3", "owner-2", "08:00-09:00", domain.StatusActive))
	other := newBooking("b4", "owner-1", "06:00-07:00", domain.StatusActive)
	other.Date = day.AddDate(0, 0, 1)
	_, _ = repo.Create(ctx, other)

	active, err := repo.GetByOwnerWithFilter(ctx, domain.OwnerBookingsFilter{OwnerID: "owner-1", Date: &day})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "b1", active[0].ID)

	all, err := repo.GetByOwnerWithFilter(ctx, domain.OwnerBookingsFilter{OwnerID: "owner-1", IncludeCanceled: true})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"b2", "b1", "b4"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestBookingRepository_GetByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(NewStore())

	byUser := newBooking("b1", "owner-1", "08:00-09:00", domain.StatusActive)
	byUser.UserID = ptr.Ptr("user-1")
	byPhone := newBooking("b2", "owner-1", "09:00-10:00", domain.StatusActive)
	byPhone.CustomerPhone = ptr.Ptr("+919876543210")
	foreign := newBooking("b3", "owner-1", "10:00-11:00", domain.StatusActive)
	foreign.UserID = ptr.Ptr("user-2")

	for _, b := range []*domain.Booking{byUser, byPhone, foreign} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	got, err := repo.GetByCustomer(ctx, domain.CustomerBookingsFilter{UserID: "user-1", Phone: ptr.Ptr("+919876543210")})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b2", got[1].ID)

	none, err := repo.GetByCustomer(ctx, domain.CustomerBookingsFilter{Phone: ptr.Ptr("")})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBlockRepository_Toggle(t *testing.T) {
	ctx := context.Background()
	repo := NewBlockRepository(NewStore())

	require.NoError(t, repo.Add(ctx, &domain.AvailabilityBlock{OwnerID: "owner-1", Date: day, Slot: "08:00-09:00"}))
	require.NoError(t, repo.Add(ctx, &domain.AvailabilityBlock{OwnerID: "owner-1", Date: day, Slot: "06:00-07:00"}))
	require.NoError(t, repo.Add(ctx, &domain.AvailabilityBlock{OwnerID: "owner-1", Date: day, Slot: "08:00-09:00"}))

	blocks, err := repo.List(ctx, "owner-1", day)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "08:00-09:00", blocks[0].Slot)
	assert.Equal(t, "06:00-07:00", blocks[1].Slot)

	require.NoError(t, repo.Remove(ctx, "owner-1", day, "08:00-09:00"))
	require.NoError(t, repo.Remove(ctx, "owner-1", day, "08:00-09:00"))

	blocks, err = repo.List(ctx, "owner-1", day)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	other, err := repo.List(ctx, "owner-2", day)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	_, err := repo.Create(ctx, &domain.User{ID: "u1", ExternalUID: "fb-1", Phone: "+911111111111", Name: "A"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.User{ID: "u2", Phone: "+911111111111"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	got, err := repo.GetByExternalUID(ctx, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	got, err = repo.GetByPhone(ctx, "+911111111111")
	require.NoError(t, err)
	got.Name = "B"
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Name)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	_, err = repo.GetByExternalUID(ctx, "")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestOwnerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOwnerRepository([]*domain.Owner{{ID: "owner-1", Email: "Owner@SportItUp.in"}})

	o, err := repo.GetByEmail(ctx, "  owner@sportitup.in ")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", o.ID)

	_, err = repo.GetByID(ctx, "owner-2")
	assert.ErrorIs(t, err, storage.ErrOwnerNotFound)
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	bookings := NewBookingRepository(store)
	blocks := NewBlockRepository(store)
	users := NewUserRepository(store)

	_, _ = bookings.Create(ctx, newBooking("b1", "owner-1", "08:00-09:00", domain.StatusActive))
	_ = blocks.Add(ctx, &domain.AvailabilityBlock{OwnerID: "owner-1", Date: day, Slot: "x"})
	_, _ = users.Create(ctx, &domain.User{ID: "u1", Phone: "+91"})

	store.Reset()

	_, err := bookings.GetByID(ctx, "b1")
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
	list, _ := blocks.List(ctx, "owner-1", day)
	assert.Empty(t, list)
	_, err = users.GetByID(ctx, "u1")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStore_DoSerializable(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	// вложенный вызов не блокируется
	err := store.DoSerializable(ctx, func(ctx context.Context) error {
		return store.DoSerializable(ctx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)

	// транзакции не пересекаются
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.DoSerializable(ctx, func(context.Context) error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, store.DoSerializable(canceled, func(context.Context) error { return nil }), context.Canceled)
}
