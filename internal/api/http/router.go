package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/http/handlers"
	"github.com/siga-edu/academic-service/internal/auth"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Professors     *handlers.ProfessorsHandler
	Staff          *handlers.StaffHandler
	Courses        *handlers.CoursesHandler
	Attendance     *handlers.AttendanceHandler
	Summaries      *handlers.SummariesHandler
	Effectiveness  *handlers.EffectivenessHandler
	Permissions    *handlers.PermissionsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Everything outside the health probes,
// the metrics endpoint and the login flow requires a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/perfil", cfg.Users.Me)

	users := protected.Group("/usuarios", auth.RequireRole(domain.RoleFuncionario), auth.RequirePermission(domain.PermUsersManage))
	users.Post("/", cfg.Users.Create)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)
	users.Get("/:id/permissoes", cfg.Permissions.ListForUser)

	professors := protected.Group("/professores")
	professors.Post("/", auth.RequirePermission(domain.PermProfessorsCreate), cfg.Professors.Create)
	professors.Get("/", auth.RequirePermission(domain.PermProfessorsList), cfg.Professors.List)
	professors.Get("/:id", auth.RequirePermission(domain.PermProfessorsList), cfg.Professors.Get)
	professors.Put("/:id", auth.RequirePermission(domain.PermProfessorsUpdate), cfg.Professors.Update)
	professors.Delete("/:id", auth.RequirePermission(domain.PermProfessorsDelete), cfg.Professors.Delete)

	staff := protected.Group("/funcionarios")
	staff.Post("/", auth.RequirePermission(domain.PermStaffCreate), cfg.Staff.Create)
	staff.Get("/", auth.RequirePermission(domain.PermStaffList), cfg.Staff.List)
	staff.Get("/:id", auth.RequirePermission(domain.PermStaffList), cfg.Staff.Get)
	staff.Put("/:id", auth.RequirePermission(domain.PermStaffUpdate), cfg.Staff.Update)
	staff.Delete("/:id", auth.RequirePermission(domain.PermStaffDelete), cfg.Staff.Delete)

	courses := protected.Group("/cursos")
	courses.Get("/", cfg.Courses.List)
	courses.Get("/:id", cfg.Courses.Get)
	courses.Post("/", auth.RequirePermission(domain.PermCoursesManage), cfg.Courses.Create)
	courses.Put("/:id", auth.RequirePermission(domain.PermCoursesManage), cfg.Courses.Update)
	courses.Delete("/:id", auth.RequirePermission(domain.PermCoursesManage), cfg.Courses.Delete)

	attendance := protected.Group("/frequencias", auth.RequirePermission(domain.PermAttendanceManage))
	attendance.Post("/", cfg.Attendance.Create)
	attendance.Get("/", cfg.Attendance.List)
	attendance.Get("/:id", cfg.Attendance.Get)
	attendance.Put("/:id", cfg.Attendance.Update)
	attendance.Delete("/:id", cfg.Attendance.Delete)

	summaries := protected.Group("/sumarios", auth.RequirePermission(domain.PermSummariesManage))
	summaries.Post("/", cfg.Summaries.Create)
	summaries.Get("/", cfg.Summaries.List)
	summaries.Get("/:id", cfg.Summaries.Get)
	summaries.Put("/:id", cfg.Summaries.Update)
	summaries.Delete("/:id", cfg.Summaries.Delete)

	effectiveness := protected.Group("/efetividades", auth.RequirePermission(domain.PermEffectivenessManage))
	effectiveness.Post("/", cfg.Effectiveness.Create)
	effectiveness.Get("/", cfg.Effectiveness.List)
	effectiveness.Get("/:id", cfg.Effectiveness.Get)
	effectiveness.Put("/:id", cfg.Effectiveness.Update)
	effectiveness.Delete("/:id", cfg.Effectiveness.Delete)

	permissions := protected.Group("/permissoes", auth.RequirePermission(domain.PermPermissionsManage))
	permissions.Post("/", cfg.Permissions.Create)
	permissions.Get("/", cfg.Permissions.List)
	permissions.Delete("/:id", cfg.Permissions.Delete)
	permissions.Post("/conceder", cfg.Permissions.Grant)
	permissions.Post("/revogar", cfg.Permissions.Revoke)
}
