package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FieldDetail points at a single violated field.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DomainError standardizes application errors. Code is the stable string
// rendered in the error envelope's "error" field.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    []FieldDetail
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details []FieldDetail) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details []FieldDetail) error {
	return NewDomainError("Validation Error", message, http.StatusBadRequest, details)
}

func NewBadRequest(message string) error {
	return NewDomainError("Bad Request", message, http.StatusBadRequest, nil)
}

func NewNotFound(resource string) error {
	return NewDomainError("Not Found", fmt.Sprintf("%s não encontrado", resource), http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError("Unauthorized", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("Forbidden", message, http.StatusForbidden, nil)
}

func NewConflict(message string) error {
	return NewDomainError("Conflict", message, http.StatusConflict, nil)
}

func NewTimeout() error {
	return NewDomainError("Request Timeout", "a requisição excedeu o tempo limite", http.StatusRequestTimeout, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "Internal Server Error",
		Message:    "erro interno do servidor",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// Postgres SQLSTATE codes classified by ToDomainError.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// ToDomainError classifies any failure raised during request processing into
// exactly one DomainError. Application errors keep their own status; store
// errors are mapped by SQLSTATE; anything unrecognized becomes a 500 whose
// original error is retained for logging but never rendered outside
// development mode.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound("registro").(*DomainError)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			field := constraintField(pgErr)
			msg := "valor duplicado"
			if field != "" {
				msg = fmt.Sprintf("já existe um registro com este valor de %s", field)
			}
			return NewConflict(msg).(*DomainError)
		case pgForeignKeyViolation:
			return NewBadRequest("registro referenciado por outros registros").(*DomainError)
		case pgNotNullViolation:
			field := pgErr.ColumnName
			msg := "relação obrigatória ausente"
			if field != "" {
				msg = fmt.Sprintf("campo obrigatório ausente: %s", field)
			}
			return NewBadRequest(msg).(*DomainError)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeout().(*DomainError)
	}

	return NewInternalError(err).(*DomainError)
}

// constraintField extracts the conflicting column names from a unique
// violation. Postgres reports them in the detail line as
// "Key (email)=(a@b.com) already exists." with the constraint name as a
// fallback.
func constraintField(pgErr *pgconn.PgError) string {
	detail := pgErr.Detail
	if start := strings.Index(detail, "Key ("); start >= 0 {
		rest := detail[start+len("Key ("):]
		if end := strings.Index(rest, ")"); end > 0 {
			return rest[:end]
		}
	}
	return pgErr.ConstraintName
}
