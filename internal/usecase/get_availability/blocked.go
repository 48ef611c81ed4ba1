package get_availability

import (
	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/pkg/types"
)

// mergeBlocked объединяет ручные блокировки и времена активных бронирований без повторов.
// Сначала блокировки в порядке добавления, затем бронирования в порядке репозитория (по времени).
func mergeBlocked(blocks []*domain.AvailabilityBlock, bookings []*domain.Booking) []string {
	seen := make(map[string]struct{}, len(blocks)+len(bookings))
	blocked := make([]string, 0, len(blocks)+len(bookings))

	add := func(slot string) {
		if _, ok := seen[slot]; ok {
			return
		}
		seen[slot] = struct{}{}
		blocked = append(blocked, slot)
	}

	for _, b := range blocks {
		add(b.Slot)
	}
	for _, b := range bookings {
		if b.IsActive() {
			add(b.Time)
		}
	}
	return blocked
}

// startHours сокращает метки до времени начала, без повторов
func startHours(blocked []string) []string {
	seen := make(map[string]struct{}, len(blocked))
	hours := make([]string, 0, len(blocked))
	for _, slot := range blocked {
		h := types.StartToken(slot)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		hours = append(hours, h)
	}
	return hours
}
