package get_availability

// Request запрос занятости слотов на дату.
// OwnerID - кабинет владельца, VenueID - витрина (владелец ищется по каталогу).
type Request struct {
	OwnerID string
	VenueID string
	Date    string // YYYY-MM-DD
}

// IsPublic запрос с витрины
func (r *Request) IsPublic() bool {
	return r.OwnerID == ""
}

// Response занятость слотов
type Response struct {
	Date    string
	VenueID string
	OwnerID string

	// Slots сетка слотов площадки (витрина) или всех площадок владельца (кабинет)
	Slots []string

	// Blocked ручные блокировки в порядке добавления, затем времена активных бронирований
	Blocked []string

	// BlockedHours Blocked, сокращенные до времени начала ("06:00-07:00" -> "06:00")
	BlockedHours []string
}
