package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/repository"
	"github.com/siga-edu/academic-service/internal/service"
)

// CoursesHandler manages courses.
type CoursesHandler struct {
	service *service.AcademicService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(academicService *service.AcademicService) *CoursesHandler {
	return &CoursesHandler{service: academicService}
}

// Create POST /cursos.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	course := &domain.Course{
		Code:         req.Codigo,
		Name:         req.Nome,
		CargaHoraria: req.CargaHoraria,
		ProfessorID:  req.ProfessorID,
	}
	if err := h.service.CreateCourse(c.UserContext(), actorID(c), course); err != nil {
		return err
	}
	return created(c, "curso criado com sucesso", dto.NewCourseResponse(course))
}

// List GET /cursos.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	page, err := validate.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return err
	}
	filter := repository.CourseFilter{Limit: page.Limit, Offset: page.Offset()}
	if professorID := c.Query("professor_id"); professorID != "" {
		filter.ProfessorID = &professorID
	}

	courses, err := h.service.ListCourses(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.NewCourseResponse(&courses[i]))
	}
	return okData(c, items)
}

// Get GET /cursos/:id.
func (h *CoursesHandler) Get(c *fiber.Ctx) error {
	course, err := h.service.GetCourse(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return okData(c, dto.NewCourseResponse(course))
}

// Update PUT /cursos/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	var req dto.CourseUpdateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	course, err := h.service.UpdateCourse(c.UserContext(), actorID(c), c.Params("id"), req.Nome, req.CargaHoraria, req.ProfessorID, req.Ativo)
	if err != nil {
		return err
	}
	return ok(c, "curso atualizado com sucesso", dto.NewCourseResponse(course))
}

// Delete DELETE /cursos/:id.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteCourse(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return okMessage(c, "curso removido com sucesso")
}
