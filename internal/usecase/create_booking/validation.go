package create_booking

import (
	"fmt"
	"strings"

	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/pkg/types"
)

// normalizeRequest обрезает пробелы; пустой телефон считается отсутствующим
func normalizeRequest(req *Request) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.VenueID = strings.TrimSpace(req.VenueID)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Sport = strings.ToLower(strings.TrimSpace(req.Sport))
	req.Customer = strings.TrimSpace(req.Customer)

	if req.CustomerPhone != nil {
		p := strings.TrimSpace(*req.CustomerPhone)
		if p == "" {
			req.CustomerPhone = nil
		} else {
			req.CustomerPhone = &p
		}
	}
}

// validateRequest валидирует входные данные запроса по тегам
func (uc *UseCase) validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	normalizeRequest(req)

	if err := uc.validator.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// slotConflict проверяет занятость слота.
// Онлайн: слот занят, если он заблокирован вручную или есть активное бронирование.
// Кабинет: владелец может бронировать поверх своих блокировок, мешают только бронирования.
func slotConflict(source domain.BookingSource, slot string, blocks []*domain.AvailabilityBlock, bookings []*domain.Booking) bool {
	if domain.SlotTaken(bookings, slot, "") {
		return true
	}
	if source != domain.SourceOnline {
		return false
	}

	for _, b := range blocks {
		if types.SameSlot(b.Slot, slot) {
			return true
		}
	}
	return false
}
