package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

func TestViolationsAggregate(t *testing.T) {
	var v Violations
	v.Required("nome", "")
	v.Email("email", "not-an-email")
	v.IntRange("mes", 13, 1, 12)

	err := v.Err()
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, 400, domainErr.HTTPStatus)
	require.Len(t, domainErr.Details, 3)

	fields := make([]string, 0, len(domainErr.Details))
	for _, d := range domainErr.Details {
		fields = append(fields, d.Field)
	}
	require.ElementsMatch(t, []string{"nome", "email", "mes"}, fields)
}

func TestViolationsEmpty(t *testing.T) {
	var v Violations
	v.Required("nome", "Ana")
	v.Email("email", "ana@escola.edu.br")
	v.MinLen("senha", "12345678", 8)
	v.OneOf("tipo", "PROFESSOR", "PROFESSOR", "FUNCIONARIO")
	require.NoError(t, v.Err())
}

func TestDate(t *testing.T) {
	var v Violations
	parsed := v.Date("data", "2026-03-15")
	require.NoError(t, v.Err())
	require.Equal(t, 2026, parsed.Year())

	v.Date("data", "15/03/2026")
	require.Error(t, v.Err())
}

func TestDecodeStrictRejectsUnknownFields(t *testing.T) {
	var out struct {
		Nome string `json:"nome"`
	}
	require.NoError(t, DecodeStrict([]byte(`{"nome":"Ana"}`), &out))
	require.Equal(t, "Ana", out.Nome)

	err := DecodeStrict([]byte(`{"nome":"Ana","extra":true}`), &out)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, 400, domainErr.HTTPStatus)
}

func TestParsePaginationDefaults(t *testing.T) {
	p, err := ParsePagination("", "")
	require.NoError(t, err)
	require.Equal(t, Pagination{Page: 1, Limit: 10}, p)
	require.Equal(t, 0, p.Offset())
}

func TestParsePagination(t *testing.T) {
	p, err := ParsePagination("3", "25")
	require.NoError(t, err)
	require.Equal(t, Pagination{Page: 3, Limit: 25}, p)
	require.Equal(t, 50, p.Offset())

	_, err = ParsePagination("0", "")
	require.Error(t, err)

	_, err = ParsePagination("abc", "10")
	require.Error(t, err)

	_, err = ParsePagination("1", "500")
	require.Error(t, err)
}
