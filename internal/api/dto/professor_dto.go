package dto

import (
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// ProfessorCreateRequest payload for POST /professores. Creating a professor
// also creates the linked user account, so credentials come in the same
// payload.
type ProfessorCreateRequest struct {
	Nome         string `json:"nome"`
	Matricula    string `json:"matricula"`
	Titulacao    string `json:"titulacao"`
	Departamento string `json:"departamento"`
	Email        string `json:"email"`
	Senha        string `json:"senha"`
}

// Validate applies the creation schema.
func (r *ProfessorCreateRequest) Validate() error {
	var v validate.Violations
	v.Required("nome", r.Nome)
	v.MaxLen("nome", r.Nome, 120)
	v.Required("matricula", r.Matricula)
	v.MaxLen("matricula", r.Matricula, 30)
	v.Required("email", r.Email)
	v.Email("email", r.Email)
	v.Required("senha", r.Senha)
	v.MinLen("senha", r.Senha, 8)
	return v.Err()
}

// ProfessorUpdateRequest payload for PUT /professores/:id.
type ProfessorUpdateRequest struct {
	Nome         *string `json:"nome"`
	Titulacao    *string `json:"titulacao"`
	Departamento *string `json:"departamento"`
	Ativo        *bool   `json:"ativo"`
}

// Validate applies the update schema.
func (r *ProfessorUpdateRequest) Validate() error {
	var v validate.Violations
	if r.Nome != nil {
		v.Required("nome", *r.Nome)
		v.MaxLen("nome", *r.Nome, 120)
	}
	return v.Err()
}

// ProfessorResponse is the public view of a professor.
type ProfessorResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"usuario_id"`
	Nome         string `json:"nome"`
	Matricula    string `json:"matricula"`
	Titulacao    string `json:"titulacao,omitempty"`
	Departamento string `json:"departamento,omitempty"`
	Ativo        bool   `json:"ativo"`
}

// NewProfessorResponse maps a domain professor.
func NewProfessorResponse(p *domain.Professor) ProfessorResponse {
	return ProfessorResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Nome:         p.Name,
		Matricula:    p.Matricula,
		Titulacao:    p.Titulacao,
		Departamento: p.Departamento,
		Ativo:        p.Active,
	}
}
