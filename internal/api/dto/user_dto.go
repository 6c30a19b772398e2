package dto

import (
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
)

// UserCreateRequest payload for POST /usuarios. This schema forbids unknown
// fields; handlers bind it with validate.DecodeStrict.
type UserCreateRequest struct {
	Email            string          `json:"email"`
	Senha            string          `json:"senha"`
	ConfirmacaoSenha string          `json:"confirmacao_senha"`
	Tipo             domain.UserRole `json:"tipo"`
}

// Validate applies per-field checks and, once those pass, the whole-object
// refinement that the confirmation must equal the primary password.
func (r *UserCreateRequest) Validate() error {
	var v validate.Violations
	v.Required("email", r.Email)
	v.Email("email", r.Email)
	v.Required("senha", r.Senha)
	v.MinLen("senha", r.Senha, 8)
	v.Required("confirmacao_senha", r.ConfirmacaoSenha)
	if r.Tipo == "" {
		v.Add("tipo", "campo obrigatório")
	}
	v.OneOf("tipo", string(r.Tipo), string(domain.RoleProfessor), string(domain.RoleFuncionario))

	if v.Empty() && r.Senha != r.ConfirmacaoSenha {
		v.Add("confirmacao_senha", "deve ser igual ao campo senha")
	}
	return v.Err()
}

// UserUpdateRequest payload for PUT /usuarios/:id. Only present fields are
// applied.
type UserUpdateRequest struct {
	Email *string `json:"email"`
	Senha *string `json:"senha"`
	Ativo *bool   `json:"ativo"`
}

// Validate applies the update schema.
func (r *UserUpdateRequest) Validate() error {
	var v validate.Violations
	if r.Email != nil {
		v.Required("email", *r.Email)
		v.Email("email", *r.Email)
	}
	if r.Senha != nil {
		v.Required("senha", *r.Senha)
		v.MinLen("senha", *r.Senha, 8)
	}
	return v.Err()
}
