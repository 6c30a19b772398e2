package domain

import "time"

// Course is a taught discipline, optionally assigned to a professor.
type Course struct {
	ID           string
	Code         string
	Name         string
	CargaHoraria int
	ProfessorID  *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
