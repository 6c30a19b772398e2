package dto

import (
	"time"

	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// SummaryCreateRequest payload for POST /sumarios.
type SummaryCreateRequest struct {
	CursoID     string `json:"curso_id"`
	ProfessorID string `json:"professor_id"`
	Data        string `json:"data"`
	Conteudo    string `json:"conteudo"`
}

// Validate applies the schema and returns the parsed date.
func (r *SummaryCreateRequest) Validate() (time.Time, error) {
	var v validate.Violations
	v.Required("curso_id", r.CursoID)
	v.Required("professor_id", r.ProfessorID)
	v.Required("data", r.Data)
	date := v.Date("data", r.Data)
	v.Required("conteudo", r.Conteudo)
	v.MaxLen("conteudo", r.Conteudo, 2000)
	return date, v.Err()
}

// SummaryUpdateRequest payload for PUT /sumarios/:id.
type SummaryUpdateRequest struct {
	Conteudo *string `json:"conteudo"`
}

// Validate applies the update schema.
func (r *SummaryUpdateRequest) Validate() error {
	var v validate.Violations
	if r.Conteudo != nil {
		v.Required("conteudo", *r.Conteudo)
		v.MaxLen("conteudo", *r.Conteudo, 2000)
	}
	return v.Err()
}

// SummaryResponse is the public view of a class summary.
type SummaryResponse struct {
	ID          string `json:"id"`
	CursoID     string `json:"curso_id"`
	ProfessorID string `json:"professor_id"`
	Data        string `json:"data"`
	Conteudo    string `json:"conteudo"`
}

// NewSummaryResponse maps a domain class summary.
func NewSummaryResponse(s *domain.ClassSummary) SummaryResponse {
	return SummaryResponse{
		ID:          s.ID,
		CursoID:     s.CourseID,
		ProfessorID: s.ProfessorID,
		Data:        s.Date.Format("2006-01-02"),
		Conteudo:    s.Conteudo,
	}
}
