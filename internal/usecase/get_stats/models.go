package get_stats

import "github.com/KrishRally/Sportitup/internal/domain"

// Request статистика владельца
type Request struct {
	OwnerID string
}

// Bucket период статистики
type Bucket struct {
	Key      string  `json:"key"`
	Bookings int     `json:"bookings"`
	Earnings float64 `json:"earnings"`
}

// Today итог за сегодня (без ключа)
type Today struct {
	Bookings int     `json:"bookings"`
	Earnings float64 `json:"earnings"`
}

// Response ответ со статистикой
type Response struct {
	Today   Today    `json:"today"`
	Daily   []Bucket `json:"daily"`
	Weekly  []Bucket `json:"weekly"`
	Monthly []Bucket `json:"monthly"`
}

func fromDomainBuckets(buckets []domain.StatsBucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Bucket{Key: b.Key, Bookings: b.Bookings, Earnings: b.Earnings})
	}
	return out
}

// FromDomainStats конвертирует domain.Stats в Response
func FromDomainStats(s *domain.Stats) *Response {
	return &Response{
		Today:   Today{Bookings: s.Today.Bookings, Earnings: s.Today.Earnings},
		Daily:   fromDomainBuckets(s.Daily),
		Weekly:  fromDomainBuckets(s.Weekly),
		Monthly: fromDomainBuckets(s.Monthly),
	}
}
