package domain

import "time"

// Role роль владельца сессии
type Role string

const (
	RoleOwner Role = "owner"
	RoleUser  Role = "user"
)

// Session серверная запись сессии; токен в cookie ссылается на неё по ID
type Session struct {
	ID        string
	Subject   string
	Role      Role
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
