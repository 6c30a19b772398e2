package domain

import "time"

// UserRole enumerates the account kinds known to the platform.
type UserRole string

const (
	RoleProfessor   UserRole = "PROFESSOR"
	RoleFuncionario UserRole = "FUNCIONARIO"
)

// ValidRole reports whether the given role belongs to the enumeration.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleProfessor, RoleFuncionario:
		return true
	}
	return false
}

// User is the credential-bearing account behind a professor or staff profile.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
