package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/repository"
	"github.com/siga-edu/academic-service/internal/service"
)

// SummariesHandler manages class summaries.
type SummariesHandler struct {
	service *service.AcademicService
}

// NewSummariesHandler constructs handler.
func NewSummariesHandler(academicService *service.AcademicService) *SummariesHandler {
	return &SummariesHandler{service: academicService}
}

// Create POST /sumarios.
func (h *SummariesHandler) Create(c *fiber.Ctx) error {
	var req dto.SummaryCreateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	date, err := req.Validate()
	if err != nil {
		return err
	}

	summary := &domain.ClassSummary{
		CourseID:    req.CursoID,
		ProfessorID: req.ProfessorID,
		Date:        date,
		Conteudo:    req.Conteudo,
	}
	if err := h.service.CreateSummary(c.UserContext(), actorID(c), summary); err != nil {
		return err
	}
	return created(c, "sumário criado com sucesso", dto.NewSummaryResponse(summary))
}

// List GET /sumarios.
func (h *SummariesHandler) List(c *fiber.Ctx) error {
	page, err := validate.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return err
	}
	filter := repository.SummaryFilter{Limit: page.Limit, Offset: page.Offset()}
	if courseID := c.Query("curso_id"); courseID != "" {
		filter.CourseID = &courseID
	}
	if professorID := c.Query("professor_id"); professorID != "" {
		filter.ProfessorID = &professorID
	}

	summaries, err := h.service.ListSummaries(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.SummaryResponse, 0, len(summaries))
	for i := range summaries {
		items = append(items, dto.NewSummaryResponse(&summaries[i]))
	}
	return okData(c, items)
}

// Get GET /sumarios/:id.
func (h *SummariesHandler) Get(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return okData(c, dto.NewSummaryResponse(summary))
}

// Update PUT /sumarios/:id.
func (h *SummariesHandler) Update(c *fiber.Ctx) error {
	var req dto.SummaryUpdateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	summary, err := h.service.UpdateSummary(c.UserContext(), actorID(c), c.Params("id"), req.Conteudo)
	if err != nil {
		return err
	}
	return ok(c, "sumário atualizado com sucesso", dto.NewSummaryResponse(summary))
}

// Delete DELETE /sumarios/:id.
func (h *SummariesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteSummary(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return okMessage(c, "sumário removido com sucesso")
}
