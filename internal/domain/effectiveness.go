package domain

import "time"

// EffectivenessRecord is the monthly effectiveness report for a professor.
// At most one record exists per professor and competence month.
type EffectivenessRecord struct {
	ID           string
	ProfessorID  string
	Mes          int
	Ano          int
	DiasLetivos  int
	DiasAusentes int
	Observacao   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
