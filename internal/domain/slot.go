package domain

import "time"

// AvailabilityBlock слот, закрытый владельцем вручную
type AvailabilityBlock struct {
	OwnerID   string
	Date      time.Time
	Slot      string
	CreatedAt time.Time
}

// BlockAction действие переключателя доступности
type BlockAction string

const (
	ActionBlock   BlockAction = "block"
	ActionUnblock BlockAction = "unblock"
)

func (a BlockAction) IsValid() bool {
	return a == ActionBlock || a == ActionUnblock
}
