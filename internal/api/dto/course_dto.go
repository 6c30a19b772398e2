package dto

import (
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// CourseCreateRequest payload for POST /cursos.
type CourseCreateRequest struct {
	Codigo       string  `json:"codigo"`
	Nome         string  `json:"nome"`
	CargaHoraria int     `json:"carga_horaria"`
	ProfessorID  *string `json:"professor_id"`
}

// Validate applies the creation schema.
func (r *CourseCreateRequest) Validate() error {
	var v validate.Violations
	v.Required("codigo", r.Codigo)
	v.MaxLen("codigo", r.Codigo, 20)
	v.Required("nome", r.Nome)
	v.MaxLen("nome", r.Nome, 120)
	v.IntRange("carga_horaria", r.CargaHoraria, 1, 1000)
	return v.Err()
}

// CourseUpdateRequest payload for PUT /cursos/:id.
type CourseUpdateRequest struct {
	Nome         *string `json:"nome"`
	CargaHoraria *int    `json:"carga_horaria"`
	ProfessorID  *string `json:"professor_id"`
	Ativo        *bool   `json:"ativo"`
}

// Validate applies the update schema.
func (r *CourseUpdateRequest) Validate() error {
	var v validate.Violations
	if r.Nome != nil {
		v.Required("nome", *r.Nome)
		v.MaxLen("nome", *r.Nome, 120)
	}
	if r.CargaHoraria != nil {
		v.IntRange("carga_horaria", *r.CargaHoraria, 1, 1000)
	}
	return v.Err()
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID           string  `json:"id"`
	Codigo       string  `json:"codigo"`
	Nome         string  `json:"nome"`
	CargaHoraria int     `json:"carga_horaria"`
	ProfessorID  *string `json:"professor_id,omitempty"`
	Ativo        bool    `json:"ativo"`
}

// NewCourseResponse maps a domain course.
func NewCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		Codigo:       course.Code,
		Nome:         course.Name,
		CargaHoraria: course.CargaHoraria,
		ProfessorID:  course.ProfessorID,
		Ativo:        course.Active,
	}
}
