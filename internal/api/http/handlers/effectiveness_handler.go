package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/repository"
	"github.com/siga-edu/academic-service/internal/service"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

// EffectivenessHandler manages monthly effectiveness records.
type EffectivenessHandler struct {
	service *service.AcademicService
}

// NewEffectivenessHandler constructs handler.
func NewEffectivenessHandler(academicService *service.AcademicService) *EffectivenessHandler {
	return &EffectivenessHandler{service: academicService}
}

// Create POST /efetividades.
func (h *EffectivenessHandler) Create(c *fiber.Ctx) error {
	var req dto.EffectivenessCreateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	rec := &domain.EffectivenessRecord{
		ProfessorID:  req.ProfessorID,
		Mes:          req.Mes,
		Ano:          req.Ano,
		DiasLetivos:  req.DiasLetivos,
		DiasAusentes: req.DiasAusentes,
		Observacao:   req.Observacao,
	}
	if err := h.service.CreateEffectiveness(c.UserContext(), actorID(c), rec); err != nil {
		return err
	}
	return created(c, "efetividade registrada com sucesso", dto.NewEffectivenessResponse(rec))
}

// List GET /efetividades.
func (h *EffectivenessHandler) List(c *fiber.Ctx) error {
	page, err := validate.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return err
	}
	filter := repository.EffectivenessFilter{Limit: page.Limit, Offset: page.Offset()}
	if professorID := c.Query("professor_id"); professorID != "" {
		filter.ProfessorID = &professorID
	}
	if rawAno := c.Query("ano"); rawAno != "" {
		ano, err := strconv.Atoi(rawAno)
		if err != nil {
			return apperrors.NewBadRequest("parâmetro ano inválido")
		}
		filter.Ano = &ano
	}

	records, err := h.service.ListEffectiveness(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.EffectivenessResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.NewEffectivenessResponse(&records[i]))
	}
	return okData(c, items)
}

// Get GET /efetividades/:id.
func (h *EffectivenessHandler) Get(c *fiber.Ctx) error {
	rec, err := h.service.GetEffectiveness(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return okData(c, dto.NewEffectivenessResponse(rec))
}

// Update PUT /efetividades/:id.
func (h *EffectivenessHandler) Update(c *fiber.Ctx) error {
	var req dto.EffectivenessUpdateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	rec, err := h.service.UpdateEffectiveness(c.UserContext(), actorID(c), c.Params("id"), req.DiasLetivos, req.DiasAusentes, req.Observacao)
	if err != nil {
		return err
	}
	return ok(c, "efetividade atualizada com sucesso", dto.NewEffectivenessResponse(rec))
}

// Delete DELETE /efetividades/:id.
func (h *EffectivenessHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteEffectiveness(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return okMessage(c, "efetividade removida com sucesso")
}
