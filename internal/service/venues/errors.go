package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена в каталоге
	ErrVenueNotFound = errors.New("venues: venue not found")

	// ErrInvalidCatalog возвращается при некорректной конфигурации каталога
	ErrInvalidCatalog = errors.New("venues: invalid catalog")
)
