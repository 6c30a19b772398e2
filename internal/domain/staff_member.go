package domain

import "time"

// StaffMember models an administrative staff profile linked to a user account.
type StaffMember struct {
	ID        string
	UserID    string
	Name      string
	Matricula string
	Cargo     string
	Setor     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
