package domain

import "time"

// Professor models a teaching profile linked to a user account.
type Professor struct {
	ID           string
	UserID       string
	Name         string
	Matricula    string
	Titulacao    string
	Departamento string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
