package domain

import "time"

// ClassSummary records what was taught in a course on a given day.
type ClassSummary struct {
	ID          string
	CourseID    string
	ProfessorID string
	Date        time.Time
	Conteudo    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
