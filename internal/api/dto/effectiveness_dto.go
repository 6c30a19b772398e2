package dto

import (
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// EffectivenessCreateRequest payload for POST /efetividades.
type EffectivenessCreateRequest struct {
	ProfessorID  string `json:"professor_id"`
	Mes          int    `json:"mes"`
	Ano          int    `json:"ano"`
	DiasLetivos  int    `json:"dias_letivos"`
	DiasAusentes int    `json:"dias_ausentes"`
	Observacao   string `json:"observacao"`
}

// Validate applies per-field checks plus the whole-object refinement that
// absences cannot exceed the school days of the month.
func (r *EffectivenessCreateRequest) Validate() error {
	var v validate.Violations
	v.Required("professor_id", r.ProfessorID)
	v.IntRange("mes", r.Mes, 1, 12)
	v.IntRange("ano", r.Ano, 2000, 2100)
	v.IntRange("dias_letivos", r.DiasLetivos, 1, 31)
	v.IntRange("dias_ausentes", r.DiasAusentes, 0, 31)
	v.MaxLen("observacao", r.Observacao, 500)

	if v.Empty() && r.DiasAusentes > r.DiasLetivos {
		v.Add("dias_ausentes", "não pode exceder dias_letivos")
	}
	return v.Err()
}

// EffectivenessUpdateRequest payload for PUT /efetividades/:id.
type EffectivenessUpdateRequest struct {
	DiasLetivos  *int    `json:"dias_letivos"`
	DiasAusentes *int    `json:"dias_ausentes"`
	Observacao   *string `json:"observacao"`
}

// Validate applies the update schema. When the payload carries both counts
// the absence refinement is checked here; when only one is present the
// service re-checks it against the stored record.
func (r *EffectivenessUpdateRequest) Validate() error {
	var v validate.Violations
	if r.DiasLetivos != nil {
		v.IntRange("dias_letivos", *r.DiasLetivos, 1, 31)
	}
	if r.DiasAusentes != nil {
		v.IntRange("dias_ausentes", *r.DiasAusentes, 0, 31)
	}
	if r.Observacao != nil {
		v.MaxLen("observacao", *r.Observacao, 500)
	}

	if v.Empty() && r.DiasLetivos != nil && r.DiasAusentes != nil && *r.DiasAusentes > *r.DiasLetivos {
		v.Add("dias_ausentes", "não pode exceder dias_letivos")
	}
	return v.Err()
}

// EffectivenessResponse is the public view of an effectiveness record.
type EffectivenessResponse struct {
	ID           string `json:"id"`
	ProfessorID  string `json:"professor_id"`
	Mes          int    `json:"mes"`
	Ano          int    `json:"ano"`
	DiasLetivos  int    `json:"dias_letivos"`
	DiasAusentes int    `json:"dias_ausentes"`
	Observacao   string `json:"observacao,omitempty"`
}

// NewEffectivenessResponse maps a domain effectiveness record.
func NewEffectivenessResponse(e *domain.EffectivenessRecord) EffectivenessResponse {
	return EffectivenessResponse{
		ID:           e.ID,
		ProfessorID:  e.ProfessorID,
		Mes:          e.Mes,
		Ano:          e.Ano,
		DiasLetivos:  e.DiasLetivos,
		DiasAusentes: e.DiasAusentes,
		Observacao:   e.Observacao,
	}
}
