package employee

import "time"

type Employee struct {
	ID           string
	Name         string
	Email        string
	Department   string
	Position     *string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
