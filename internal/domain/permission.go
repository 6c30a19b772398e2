package domain

import "time"

// Permission is a named capability that can be granted to users.
type Permission struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// PermissionGrant associates a user with a permission.
type PermissionGrant struct {
	UserID       string
	PermissionID string
	CreatedAt    time.Time
}

// Well-known permission names seeded by the migrations. Handlers guard each
// route with the matching name.
const (
	PermUsersManage         = "usuarios.gerenciar"
	PermProfessorsCreate    = "professores.criar"
	PermProfessorsList      = "professores.listar"
	PermProfessorsUpdate    = "professores.atualizar"
	PermProfessorsDelete    = "professores.remover"
	PermStaffCreate         = "funcionarios.criar"
	PermStaffList           = "funcionarios.listar"
	PermStaffUpdate         = "funcionarios.atualizar"
	PermStaffDelete         = "funcionarios.remover"
	PermCoursesManage       = "cursos.gerenciar"
	PermAttendanceManage    = "frequencias.gerenciar"
	PermSummariesManage     = "sumarios.gerenciar"
	PermEffectivenessManage = "efetividades.gerenciar"
	PermPermissionsManage   = "permissoes.gerenciar"
)
