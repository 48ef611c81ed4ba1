package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingCancel_Idempotent(t *testing.T) {
	first := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	b := &Booking{ID: "b1", Status: StatusActive}

	assert.True(t, b.Cancel(first))
	assert.Equal(t, StatusCanceled, b.Status)
	assert.Equal(t, first, *b.CanceledAt)

	assert.False(t, b.Cancel(first.Add(time.Hour)))
	assert.Equal(t, StatusCanceled, b.Status)
	assert.Equal(t, first, *b.CanceledAt)
}

func TestBookingClone(t *testing.T) {
	amount := 500.0
	b := &Booking{ID: "b1", Amount: &amount}
	c := b.Clone()
	*c.Amount = 750

	assert.Equal(t, 500.0, *b.Amount)
	assert.Equal(t, 0.0, (&Booking{}).AmountOrZero())
}

func TestSport(t *testing.T) {
	assert.True(t, SportCricket.IsValid())
	assert.True(t, SportPickleball.IsValid())
	assert.False(t, Sport("tennis").IsValid())
}

func TestVenue(t *testing.T) {
	v := &Venue{OpenTime: "06:00", CloseTime: "08:00", Sports: []Sport{SportFootball}}

	assert.Equal(t, []string{"06:00-07:00", "07:00-08:00"}, v.HourlySlots())
	assert.True(t, v.OffersSport(SportFootball))
	assert.False(t, v.OffersSport(SportCricket))
}

func TestDefaultSlotLabels(t *testing.T) {
	labels := DefaultSlotLabels()

	assert.Len(t, labels, 16)
	assert.Equal(t, "06:00-07:00", labels[0])
	assert.Equal(t, "21:00-22:00", labels[len(labels)-1])
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now}
	assert.True(t, s.IsExpired(now))
	assert.False(t, s.IsExpired(now.Add(-time.Second)))
}

func TestSlotTaken(t *testing.T) {
	bookings := []*Booking{
		{ID: "b1", Time: "08:00-09:00", Status: StatusActive},
		{ID: "b2", Time: "10:00-11:00", Status: StatusCanceled},
	}

	assert.True(t, SlotTaken(bookings, "08:00-09:00", ""))
	assert.True(t, SlotTaken(bookings, "08:00", ""))
	assert.False(t, SlotTaken(bookings, "08:00-09:00", "b1"))
	assert.False(t, SlotTaken(bookings, "10:00-11:00", ""))
	assert.False(t, SlotTaken(nil, "06:00-07:00", ""))

	named := []*Booking{{ID: "n1", Time: "slot-1", Status: StatusActive}}
	assert.True(t, SlotTaken(named, "slot-1", ""))
	assert.False(t, SlotTaken(named, "slot-2", ""))
}
