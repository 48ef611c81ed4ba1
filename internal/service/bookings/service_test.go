package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/infra/storage/memory"
	"github.com/KrishRally/Sportitup/internal/service/bookings/models"
	"github.com/KrishRally/Sportitup/pkg/logger"
	"github.com/KrishRally/Sportitup/pkg/ptr"
	"github.com/KrishRally/Sportitup/pkg/validation"
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fixture struct {
	svc      *Service
	store    *memory.Store
	bookings *memory.BookingRepository
	users    *memory.UserRepository
	clock    *fixedTime
}

func newFixture(t *testing.T, rejectConflicts bool) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		store:    store,
		bookings: memory.NewBookingRepository(store),
		users:    memory.NewUserRepository(store),
		clock:    &fixedTime{now: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)},
	}
	f.svc = NewService(f.bookings, f.users, store, validation.New(), rejectConflicts, logger.NewNop())
	f.svc.timeProvider = f.clock
	return f
}

func (f *fixture) seed(t *testing.T, b *domain.Booking) *domain.Booking {
	t.Helper()
	if b.Status == "" {
		b.Status = domain.StatusActive
	}
	if b.Source == "" {
		b.Source = domain.SourceAdmin
	}
	if b.Sport == "" {
		b.Sport = domain.SportCricket
	}
	created, err := f.bookings.Create(context.Background(), b)
	require.NoError(t, err)
	return created
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestUpdate_Fields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	b := f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha", Amount: ptr.Ptr(500.0)})

	resp, err := f.svc.Update(ctx, "owner-1", b.ID, &models.UpdateBookingRequest{
		Customer: ptr.Ptr("  Asha K "),
		Amount:   ptr.Ptr(750.0),
		Sport:    ptr.Ptr("football"),
	})
	require.NoError(t, err)

	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "owner-1", resp.OwnerID)
	assert.Equal(t, "Asha K", resp.Customer)
	assert.Equal(t, "football", resp.Sport)
	require.NotNil(t, resp.Amount)
	assert.Equal(t, 750.0, *resp.Amount)
	assert.Equal(t, "2025-07-01", resp.Date)
	assert.Equal(t, "06:00-07:00", resp.Time)
}

func TestUpdate_ForeignOrMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	b := f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha"})

	_, err := f.svc.Update(ctx, "owner-2", b.ID, &models.UpdateBookingRequest{Customer: ptr.Ptr("X")})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.Update(ctx, "owner-1", "missing", &models.UpdateBookingRequest{Customer: ptr.Ptr("X")})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.ErrorIs(t, f.svc.Cancel(ctx, "owner-2", b.ID), ErrBookingNotFound)

	stored, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", stored.Customer)
	assert.True(t, stored.IsActive())
}

func TestUpdate_InvalidInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	b := f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha"})

	tests := []struct {
		name string
		req  *models.UpdateBookingRequest
	}{
		{"empty", &models.UpdateBookingRequest{}},
		{"bad date", &models.UpdateBookingRequest{Date: ptr.Ptr("2025-13-40")}},
		{"empty customer", &models.UpdateBookingRequest{Customer: ptr.Ptr("   ")}},
		{"long customer", &models.UpdateBookingRequest{Customer: ptr.Ptr(strings.Repeat("a", 101))}},
		{"unknown sport", &models.UpdateBookingRequest{Sport: ptr.Ptr("tennis")}},
		{"unknown status", &models.UpdateBookingRequest{Status: ptr.Ptr("done")}},
		{"negative amount", &models.UpdateBookingRequest{Amount: ptr.Ptr(-1.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Update(ctx, "owner-1", b.ID, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	b := f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha"})

	resp, err := f.svc.Update(ctx, "owner-1", b.ID, &models.UpdateBookingRequest{Status: ptr.Ptr("active")})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)

	resp, err = f.svc.Update(ctx, "owner-1", b.ID, &models.UpdateBookingRequest{Status: ptr.Ptr("canceled")})
	require.NoError(t, err)
	assert.Equal(t, "canceled", resp.Status)
	require.NotNil(t, resp.CanceledAt)

	resp, err = f.svc.Update(ctx, "owner-1", b.ID, &models.UpdateBookingRequest{Status: ptr.Ptr("canceled")})
	require.NoError(t, err)
	assert.Equal(t, "canceled", resp.Status)

	_, err = f.svc.Update(ctx, "owner-1", b.ID, &models.UpdateBookingRequest{Status: ptr.Ptr("active")})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdate_MoveToTakenSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected", func(t *testing.T) {
		f := newFixture(t, true)
		f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha"})
		b2 := f.seed(t, &domain.Booking{ID: "b2", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "07:00-08:00", Customer: "Ravi"})

		_, err := f.svc.Update(ctx, "owner-1", b2.ID, &models.UpdateBookingRequest{Time: ptr.Ptr("06:00-07:00")})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		// другой день свободен
		resp, err := f.svc.Update(ctx, "owner-1", b2.ID, &models.UpdateBookingRequest{Date: ptr.Ptr("2025-07-02"), Time: ptr.Ptr("06:00-07:00")})
		require.NoError(t, err)
		assert.Equal(t, "2025-07-02", resp.Date)
	})

	t.Run("allowed when conflicts are not rejected", func(t *testing.T) {
		f := newFixture(t, false)
		f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha"})
		b2 := f.seed(t, &domain.Booking{ID: "b2", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "07:00-08:00", Customer: "Ravi"})

		resp, err := f.svc.Update(ctx, "owner-1", b2.ID, &models.UpdateBookingRequest{Time: ptr.Ptr("06:00-07:00")})
		require.NoError(t, err)
		assert.Equal(t, "06:00-07:00", resp.Time)
	})

	t.Run("free-form labels compared whole", func(t *testing.T) {
		f := newFixture(t, true)
		f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "slot-1", Customer: "Asha"})
		b2 := f.seed(t, &domain.Booking{ID: "b2", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "07:00-08:00", Customer: "Ravi"})

		resp, err := f.svc.Update(ctx, "owner-1", b2.ID, &models.UpdateBookingRequest{Time: ptr.Ptr("slot-2")})
		require.NoError(t, err)
		assert.Equal(t, "slot-2", resp.Time)

		_, err = f.svc.Update(ctx, "owner-1", b2.ID, &models.UpdateBookingRequest{Time: ptr.Ptr("slot-1")})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("canceled holder does not block", func(t *testing.T) {
		f := newFixture(t, true)
		f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha", Status: domain.StatusCanceled})
		b2 := f.seed(t, &domain.Booking{ID: "b2", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "07:00-08:00", Customer: "Ravi"})

		_, err := f.svc.Update(ctx, "owner-1", b2.ID, &models.UpdateBookingRequest{Time: ptr.Ptr("06:00-07:00")})
		assert.NoError(t, err)
	})
}

func TestCancel_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	b := f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha"})

	require.NoError(t, f.svc.Cancel(ctx, "owner-1", b.ID))
	first, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, first.CanceledAt)

	f.clock.now = f.clock.now.Add(time.Hour)
	require.NoError(t, f.svc.Cancel(ctx, "owner-1", b.ID))

	second, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, second.Status)
	assert.Equal(t, *first.CanceledAt, *second.CanceledAt)

	assert.ErrorIs(t, f.svc.Cancel(ctx, "owner-1", "missing"), ErrBookingNotFound)
}

func TestListForOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.seed(t, &domain.Booking{ID: "b2", OwnerID: "owner-1", Date: day(t, "2025-07-02"), Time: "06:00-07:00", Customer: "B"})
	f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "08:00-09:00", Customer: "A", Status: domain.StatusCanceled})
	f.seed(t, &domain.Booking{ID: "b3", OwnerID: "owner-2", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "C"})

	resp, err := f.svc.ListForOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "b1", resp.Bookings[0].ID)
	assert.Equal(t, "b2", resp.Bookings[1].ID)

	empty, err := f.svc.ListForOwner(ctx, "owner-9")
	require.NoError(t, err)
	assert.NotNil(t, empty.Bookings)
	assert.Empty(t, empty.Bookings)
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	_, err := f.users.Create(ctx, &domain.User{ID: "u1", Phone: "+919876543210", Name: "Ravi", IsVerified: true})
	require.NoError(t, err)

	f.seed(t, &domain.Booking{ID: "linked", OwnerID: "owner-1", UserID: ptr.Ptr("u1"), Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Ravi", Source: domain.SourceOnline})
	f.seed(t, &domain.Booking{ID: "by-phone", OwnerID: "owner-1", CustomerPhone: ptr.Ptr("+919876543210"), Date: day(t, "2025-07-02"), Time: "06:00-07:00", Customer: "Ravi"})
	f.seed(t, &domain.Booking{ID: "other", OwnerID: "owner-1", CustomerPhone: ptr.Ptr("+919800000000"), Date: day(t, "2025-07-03"), Time: "06:00-07:00", Customer: "Other"})

	resp, err := f.svc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "linked", resp.Bookings[0].ID)
	assert.Equal(t, "by-phone", resp.Bookings[1].ID)
}

func TestGetForOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	b := f.seed(t, &domain.Booking{ID: "b1", OwnerID: "owner-1", Date: day(t, "2025-07-01"), Time: "06:00-07:00", Customer: "Asha"})

	resp, err := f.svc.GetForOwner(ctx, "owner-1", b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", resp.Customer)

	_, err = f.svc.GetForOwner(ctx, "owner-2", b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
