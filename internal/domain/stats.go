package domain

// StatsBucket количество и сумма бронирований за период
type StatsBucket struct {
	Key      string
	Bookings int
	Earnings float64
}

// Stats статистика владельца
type Stats struct {
	Today   StatsBucket
	Daily   []StatsBucket
	Weekly  []StatsBucket
	Monthly []StatsBucket
}
