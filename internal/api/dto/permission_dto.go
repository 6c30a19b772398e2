package dto

import (
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// PermissionCreateRequest payload for POST /permissoes.
type PermissionCreateRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

// Validate applies the creation schema.
func (r *PermissionCreateRequest) Validate() error {
	var v validate.Violations
	v.Required("nome", r.Nome)
	v.MaxLen("nome", r.Nome, 80)
	v.MaxLen("descricao", r.Descricao, 200)
	return v.Err()
}

// GrantRequest payload for POST /permissoes/conceder and /permissoes/revogar.
type GrantRequest struct {
	UsuarioID string `json:"usuario_id"`
	Nome      string `json:"nome"`
}

// Validate applies the grant schema.
func (r *GrantRequest) Validate() error {
	var v validate.Violations
	v.Required("usuario_id", r.UsuarioID)
	v.Required("nome", r.Nome)
	return v.Err()
}

// PermissionResponse is the public view of a permission.
type PermissionResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// NewPermissionResponse maps a domain permission.
func NewPermissionResponse(p *domain.Permission) PermissionResponse {
	return PermissionResponse{ID: p.ID, Nome: p.Name, Descricao: p.Description}
}
