package domain

import (
	"fmt"
	"time"
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Business validation constants
const (
	MaxCustomerNameLength = 100
	MaxSlotLabelLength    = 32
)

// Stats windows
const (
	DailyBuckets   = 7
	WeeklyBuckets  = 8
	MonthlyBuckets = 6
)

// Default slot grid for owners without a configured venue
const (
	DefaultFirstSlotHour = 6
	DefaultLastSlotHour  = 22
)

// DefaultSlotLabels часовые слоты 06:00-07:00 ... 21:00-22:00
func DefaultSlotLabels() []string {
	labels := make([]string, 0, DefaultLastSlotHour-DefaultFirstSlotHour)
	for h := DefaultFirstSlotHour; h < DefaultLastSlotHour; h++ {
		labels = append(labels, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return labels
}

// ParseDate разбирает дату YYYY-MM-DD в полночь UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// DateOnly отбрасывает время, сохраняя календарный день
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay сравнивает календарные дни
func SameDay(a, b time.Time) bool {
	return a.Format(DateFormat) == b.Format(DateFormat)
}
