package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siga-edu/academic-service/internal/domain"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

func validUserCreate() UserCreateRequest {
	return UserCreateRequest{
		Email:            "ana@escola.edu.br",
		Senha:            "senha-forte",
		ConfirmacaoSenha: "senha-forte",
		Tipo:             domain.RoleProfessor,
	}
}

func TestUserCreateRequestValid(t *testing.T) {
	req := validUserCreate()
	require.NoError(t, req.Validate())
}

func TestUserCreateRequestPasswordMismatch(t *testing.T) {
	req := validUserCreate()
	req.ConfirmacaoSenha = "outra-senha"

	err := req.Validate()
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Len(t, domainErr.Details, 1)
	require.Equal(t, "confirmacao_senha", domainErr.Details[0].Field)
}

func TestUserCreateRequestFieldErrorsBeforeRefinement(t *testing.T) {
	req := UserCreateRequest{Email: "broken", Senha: "curta", ConfirmacaoSenha: "diferente", Tipo: "GERENTE"}

	err := req.Validate()
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	for _, d := range domainErr.Details {
		require.NotEqual(t, "confirmacao_senha", d.Field)
	}
}

func TestUserCreateRequestInvalidRole(t *testing.T) {
	req := validUserCreate()
	req.Tipo = "ALUNO"
	require.Error(t, req.Validate())
}

func TestEffectivenessCreateRefinement(t *testing.T) {
	req := EffectivenessCreateRequest{
		ProfessorID: "prof-1",
		Mes:         3,
		Ano:         2026,
		DiasLetivos: 20, DiasAusentes: 21,
	}
	err := req.Validate()
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, "dias_ausentes", domainErr.Details[0].Field)

	req.DiasAusentes = 2
	require.NoError(t, req.Validate())
}

func TestEffectivenessUpdateRefinement(t *testing.T) {
	letivos, ausentes := 20, 21
	req := EffectivenessUpdateRequest{DiasLetivos: &letivos, DiasAusentes: &ausentes}
	err := req.Validate()
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, "dias_ausentes", domainErr.Details[0].Field)

	ausentes = 20
	require.NoError(t, req.Validate())

	// A single-field payload passes the schema; the service checks it
	// against the stored record.
	solo := EffectivenessUpdateRequest{DiasAusentes: &ausentes}
	require.NoError(t, solo.Validate())
}

func TestAttendanceCreateRequiresPresente(t *testing.T) {
	req := AttendanceCreateRequest{ProfessorID: "p", CursoID: "c", Data: "2026-03-15"}
	_, err := req.Validate()
	require.Error(t, err)

	present := true
	req.Presente = &present
	date, err := req.Validate()
	require.NoError(t, err)
	require.Equal(t, 2026, date.Year())
}
