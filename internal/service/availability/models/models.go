package models

// ToggleRequest блокировка или разблокировка слота владельцем
type ToggleRequest struct {
	Date   string `json:"date" validate:"required,date"`
	Slot   string `json:"slot" validate:"required,slot"`
	Action string `json:"action" validate:"required,oneof=block unblock"`
}
