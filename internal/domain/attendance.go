package domain

import "time"

// AttendanceRecord registers whether a professor was present for a course on
// a given day.
type AttendanceRecord struct {
	ID          string
	ProfessorID string
	CourseID    string
	Date        time.Time
	Present     bool
	Observacao  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
