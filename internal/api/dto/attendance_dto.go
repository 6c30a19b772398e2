package dto

import (
	"time"

	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// AttendanceCreateRequest payload for POST /frequencias.
type AttendanceCreateRequest struct {
	ProfessorID string `json:"professor_id"`
	CursoID     string `json:"curso_id"`
	Data        string `json:"data"`
	Presente    *bool  `json:"presente"`
	Observacao  string `json:"observacao"`
}

// Validate applies the schema and returns the parsed date.
func (r *AttendanceCreateRequest) Validate() (time.Time, error) {
	var v validate.Violations
	v.Required("professor_id", r.ProfessorID)
	v.Required("curso_id", r.CursoID)
	v.Required("data", r.Data)
	date := v.Date("data", r.Data)
	if r.Presente == nil {
		v.Add("presente", "campo obrigatório")
	}
	v.MaxLen("observacao", r.Observacao, 500)
	return date, v.Err()
}

// AttendanceUpdateRequest payload for PUT /frequencias/:id.
type AttendanceUpdateRequest struct {
	Presente   *bool   `json:"presente"`
	Observacao *string `json:"observacao"`
}

// Validate applies the update schema.
func (r *AttendanceUpdateRequest) Validate() error {
	var v validate.Violations
	if r.Observacao != nil {
		v.MaxLen("observacao", *r.Observacao, 500)
	}
	return v.Err()
}

// AttendanceResponse is the public view of an attendance record.
type AttendanceResponse struct {
	ID          string `json:"id"`
	ProfessorID string `json:"professor_id"`
	CursoID     string `json:"curso_id"`
	Data        string `json:"data"`
	Presente    bool   `json:"presente"`
	Observacao  string `json:"observacao,omitempty"`
}

// NewAttendanceResponse maps a domain attendance record.
func NewAttendanceResponse(rec *domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:          rec.ID,
		ProfessorID: rec.ProfessorID,
		CursoID:     rec.CourseID,
		Data:        rec.Date.Format("2006-01-02"),
		Presente:    rec.Present,
		Observacao:  rec.Observacao,
	}
}
