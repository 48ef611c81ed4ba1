package domain

// Owner владелец площадок, входит в админку по email и паролю
type Owner struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
}
