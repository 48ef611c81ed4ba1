package get_stats

import (
	"time"

	"github.com/KrishRally/Sportitup/internal/domain"
)

// period полуинтервал [start, end) календарных дат
type period struct {
	key        string
	start, end time.Time
}

func (p period) contains(d time.Time) bool {
	return !d.Before(p.start) && d.Before(p.end)
}

// calendarDay дата now в часовом поясе loc как полночь UTC (так хранятся даты бронирований)
func calendarDay(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dailyPeriods today-6 ... today
func dailyPeriods(today time.Time) []period {
	periods := make([]period, 0, domain.DailyBuckets)
	for i := domain.DailyBuckets - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		periods = append(periods, period{key: start.Format(domain.DateFormat), start: start, end: start.AddDate(0, 0, 1)})
	}
	return periods
}

// weekStart понедельник недели, в которую входит day
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// weeklyPeriods 8 недель с понедельника, текущая последней
func weeklyPeriods(today time.Time) []period {
	current := weekStart(today)
	periods := make([]period, 0, domain.WeeklyBuckets)
	for i := domain.WeeklyBuckets - 1; i >= 0; i-- {
		start := current.AddDate(0, 0, -7*i)
		periods = append(periods, period{key: start.Format(domain.DateFormat), start: start, end: start.AddDate(0, 0, 7)})
	}
	return periods
}

// monthlyPeriods 6 месяцев, текущий последним
func monthlyPeriods(today time.Time) []period {
	current := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	periods := make([]period, 0, domain.MonthlyBuckets)
	for i := domain.MonthlyBuckets - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		periods = append(periods, period{key: start.Format(domain.MonthFormat), start: start, end: start.AddDate(0, 1, 0)})
	}
	return periods
}

// aggregate считает бронирования и сумму по каждому периоду
func aggregate(periods []period, bookings []*domain.Booking) []domain.StatsBucket {
	buckets := make([]domain.StatsBucket, len(periods))
	for i, p := range periods {
		buckets[i].Key = p.key
		for _, b := range bookings {
			if p.contains(b.Date) {
				buckets[i].Bookings++
				buckets[i].Earnings += b.AmountOrZero()
			}
		}
	}
	return buckets
}
