package session

import "errors"

var (
	// ErrSessionNotFound сессия отсутствует, отозвана или истекла
	ErrSessionNotFound = errors.New("session: not found")

	// ErrStore ошибка хранилища сессий
	ErrStore = errors.New("session: store error")
)
