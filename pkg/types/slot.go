package types

import (
	"fmt"
	"strings"
)

// SlotLabel метка слота "06:00-07:00"
func SlotLabel(start, end TimeString) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// StartToken часть метки до "-": "06:00-07:00" -> "06:00".
// Метки без "-" возвращаются как есть.
func StartToken(label string) string {
	label = strings.TrimSpace(label)
	if i := strings.Index(label, "-"); i >= 0 {
		return strings.TrimSpace(label[:i])
	}
	return label
}

// HourlySlots часовые слоты в интервале [open, close).
// Последний неполный час обрезается по close.
func HourlySlots(open, close TimeString) []string {
	slots := make([]string, 0)
	if open.IsZero() || close.IsZero() || !open.IsBefore(close) {
		return slots
	}
	for cur := open; cur.IsBefore(close); {
		next := cur.AddMinutes(60)
		if next.IsAfter(close) {
			next = close
		}
		slots = append(slots, SlotLabel(cur, next))
		cur = next
	}
	return slots
}

// SameSlot сравнивает метки слотов. Метки времени ("08:00-09:00", "08:00")
// совпадают по началу, остальные только целиком.
func SameSlot(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == b {
		return true
	}
	if !isTimeLabel(a) || !isTimeLabel(b) {
		return false
	}
	return StartToken(a) == StartToken(b)
}

// isTimeLabel HH:MM или HH:MM-HH:MM
func isTimeLabel(label string) bool {
	start, end, ranged := strings.Cut(label, "-")
	if _, err := NewTimeStringFromString(start); err != nil {
		return false
	}
	if !ranged {
		return true
	}
	_, err := NewTimeStringFromString(end)
	return err == nil
}
