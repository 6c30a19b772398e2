package dto

import (
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// StaffCreateRequest payload for POST /funcionarios. Like professors, the
// profile and its user account are created together.
type StaffCreateRequest struct {
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	Cargo     string `json:"cargo"`
	Setor     string `json:"setor"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
}

// Validate applies the creation schema.
func (r *StaffCreateRequest) Validate() error {
	var v validate.Violations
	v.Required("nome", r.Nome)
	v.MaxLen("nome", r.Nome, 120)
	v.Required("matricula", r.Matricula)
	v.MaxLen("matricula", r.Matricula, 30)
	v.Required("cargo", r.Cargo)
	v.Required("email", r.Email)
	v.Email("email", r.Email)
	v.Required("senha", r.Senha)
	v.MinLen("senha", r.Senha, 8)
	return v.Err()
}

// StaffUpdateRequest payload for PUT /funcionarios/:id.
type StaffUpdateRequest struct {
	Nome  *string `json:"nome"`
	Cargo *string `json:"cargo"`
	Setor *string `json:"setor"`
	Ativo *bool   `json:"ativo"`
}

// Validate applies the update schema.
func (r *StaffUpdateRequest) Validate() error {
	var v validate.Violations
	if r.Nome != nil {
		v.Required("nome", *r.Nome)
		v.MaxLen("nome", *r.Nome, 120)
	}
	if r.Cargo != nil {
		v.Required("cargo", *r.Cargo)
	}
	return v.Err()
}

// StaffResponse is the public view of a staff member.
type StaffResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"usuario_id"`
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	Cargo     string `json:"cargo"`
	Setor     string `json:"setor,omitempty"`
	Ativo     bool   `json:"ativo"`
}

// NewStaffResponse maps a domain staff member.
func NewStaffResponse(s *domain.StaffMember) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Nome:      s.Name,
		Matricula: s.Matricula,
		Cargo:     s.Cargo,
		Setor:     s.Setor,
		Ativo:     s.Active,
	}
}
