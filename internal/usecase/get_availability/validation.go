package get_availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// validateRequest проверяет запрос и возвращает разобранную дату
func validateRequest(req *Request) (time.Time, error) {
	if req == nil {
		return time.Time{}, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.VenueID = strings.TrimSpace(req.VenueID)
	req.Date = strings.TrimSpace(req.Date)

	if req.OwnerID == "" && req.VenueID == "" {
		return time.Time{}, fmt.Errorf("%w: turfId is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, req.Date)
	}
	return date, nil
}
