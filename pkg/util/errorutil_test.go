package util

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewNotFound("professor")
	mapped := ToDomainError(fmt.Errorf("wrapped: %w", original))
	require.Equal(t, 404, mapped.HTTPStatus)
	require.Equal(t, "professor não encontrado", mapped.Message)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.Equal(t, 404, mapped.HTTPStatus)
}

func TestToDomainErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:   "23505",
		Detail: "Key (email)=(ana@escola.edu.br) already exists.",
	}
	mapped := ToDomainError(pgErr)
	require.Equal(t, 409, mapped.HTTPStatus)
	require.Contains(t, mapped.Message, "email")
}

func TestToDomainErrorUniqueViolationConstraintFallback(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "courses_code_key"}
	mapped := ToDomainError(pgErr)
	require.Equal(t, 409, mapped.HTTPStatus)
	require.Contains(t, mapped.Message, "courses_code_key")
}

func TestToDomainErrorForeignKeyViolation(t *testing.T) {
	mapped := ToDomainError(&pgconn.PgError{Code: "23503"})
	require.Equal(t, 400, mapped.HTTPStatus)
	require.Equal(t, "registro referenciado por outros registros", mapped.Message)
}

func TestToDomainErrorNotNullViolation(t *testing.T) {
	mapped := ToDomainError(&pgconn.PgError{Code: "23502", ColumnName: "professor_id"})
	require.Equal(t, 400, mapped.HTTPStatus)
	require.Contains(t, mapped.Message, "professor_id")
}

func TestToDomainErrorTimeout(t *testing.T) {
	mapped := ToDomainError(context.DeadlineExceeded)
	require.Equal(t, 408, mapped.HTTPStatus)
}

func TestToDomainErrorFallback(t *testing.T) {
	cause := errors.New("connection reset")
	mapped := ToDomainError(cause)
	require.Equal(t, 500, mapped.HTTPStatus)
	require.Equal(t, "erro interno do servidor", mapped.Message)
	require.ErrorIs(t, mapped, cause)
}

func TestValidationErrorDetails(t *testing.T) {
	err := NewValidationError("dados de entrada inválidos", []FieldDetail{
		{Field: "senha", Message: "deve ter no mínimo 8 caracteres"},
	})
	mapped := ToDomainError(err)
	require.Equal(t, 400, mapped.HTTPStatus)
	require.Len(t, mapped.Details, 1)
	require.Equal(t, "senha", mapped.Details[0].Field)
}
