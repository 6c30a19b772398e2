// Package validate implements the schema-driven input validation used by the
// HTTP handlers. Checks collect every field violation before failing, so a
// request is either accepted whole or rejected with the complete list.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

// Violations accumulates field-level failures for one request.
type Violations struct {
	items []apperrors.FieldDetail
}

// Add records a violation for the given field path.
func (v *Violations) Add(field, message string) {
	v.items = append(v.items, apperrors.FieldDetail{Field: field, Message: message})
}

// Empty reports whether any violation was recorded.
func (v *Violations) Empty() bool {
	return len(v.items) == 0
}

// Err returns nil when no violation was recorded, otherwise a single
// aggregated validation error carrying every recorded field.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return apperrors.NewValidationError("dados de entrada inválidos", v.items)
}

// Required records a violation when the trimmed value is empty.
func (v *Violations) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "campo obrigatório")
	}
}

// Email records a violation when the value is not a parseable address.
// Empty values are left to Required.
func (v *Violations) Email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "e-mail inválido")
	}
}

// MinLen records a violation when the value is shorter than min runes.
func (v *Violations) MinLen(field, value string, min int) {
	if value != "" && len([]rune(value)) < min {
		v.Add(field, fmt.Sprintf("deve ter no mínimo %d caracteres", min))
	}
}

// MaxLen records a violation when the value exceeds max runes.
func (v *Violations) MaxLen(field, value string, max int) {
	if len([]rune(value)) > max {
		v.Add(field, fmt.Sprintf("deve ter no máximo %d caracteres", max))
	}
}

// IntRange records a violation when value falls outside [min, max].
func (v *Violations) IntRange(field string, value, min, max int) {
	if value < min || value > max {
		v.Add(field, fmt.Sprintf("deve estar entre %d e %d", min, max))
	}
}

// OneOf records a violation when value is not a member of allowed.
func (v *Violations) OneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, fmt.Sprintf("deve ser um de: %s", strings.Join(allowed, ", ")))
}

// Date parses value as YYYY-MM-DD, recording a violation on failure.
func (v *Violations) Date(field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		v.Add(field, "data inválida, use o formato AAAA-MM-DD")
		return time.Time{}
	}
	return parsed
}

// DecodeStrict unmarshals a JSON body rejecting unknown fields. Schemas that
// tolerate extras use the transport's lenient binder instead.
func DecodeStrict(body []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return apperrors.NewBadRequest(fmt.Sprintf("corpo da requisição malformado: %v", err))
	}
	return nil
}

// Pagination defaults applied to every list endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination is the validated page window of a list query.
type Pagination struct {
	Page  int
	Limit int
}

// Offset converts the window to a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination validates page/limit query values, applying declared
// defaults when absent and rejecting malformed or out-of-range values.
func ParsePagination(pageStr, limitStr string) (Pagination, error) {
	var v Violations
	p := Pagination{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		switch {
		case err != nil:
			v.Add("page", "deve ser um número inteiro")
		case page < 1:
			v.Add("page", "deve ser maior ou igual a 1")
		default:
			p.Page = page
		}
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		switch {
		case err != nil:
			v.Add("limit", "deve ser um número inteiro")
		case limit < 1:
			v.Add("limit", "deve ser maior ou igual a 1")
		case limit > MaxLimit:
			v.Add("limit", fmt.Sprintf("deve ser no máximo %d", MaxLimit))
		default:
			p.Limit = limit
		}
	}

	if err := v.Err(); err != nil {
		return Pagination{}, err
	}
	return p, nil
}
