package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/service"
)

// ProfessorsHandler manages professor profiles.
type ProfessorsHandler struct {
	service *service.PeopleService
}

// NewProfessorsHandler constructs handler.
func NewProfessorsHandler(peopleService *service.PeopleService) *ProfessorsHandler {
	return &ProfessorsHandler{service: peopleService}
}

// Create POST /professores.
func (h *ProfessorsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProfessorCreateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	professor, err := h.service.CreateProfessor(c.UserContext(), actorID(c), service.ProfessorCreateInput{
		Nome:         req.Nome,
		Matricula:    req.Matricula,
		Titulacao:    req.Titulacao,
		Departamento: req.Departamento,
		Email:        req.Email,
		Senha:        req.Senha,
	})
	if err != nil {
		return err
	}
	return created(c, "professor criado com sucesso", dto.NewProfessorResponse(professor))
}

// List GET /professores.
func (h *ProfessorsHandler) List(c *fiber.Ctx) error {
	page, err := validate.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return err
	}
	professors, err := h.service.ListProfessors(c.UserContext(), page.Limit, page.Offset())
	if err != nil {
		return err
	}
	items := make([]dto.ProfessorResponse, 0, len(professors))
	for i := range professors {
		items = append(items, dto.NewProfessorResponse(&professors[i]))
	}
	return okData(c, items)
}

// Get GET /professores/:id.
func (h *ProfessorsHandler) Get(c *fiber.Ctx) error {
	professor, err := h.service.GetProfessor(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return okData(c, dto.NewProfessorResponse(professor))
}

// Update PUT /professores/:id.
func (h *ProfessorsHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfessorUpdateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	professor, err := h.service.UpdateProfessor(c.UserContext(), actorID(c), c.Params("id"), req.Nome, req.Titulacao, req.Departamento, req.Ativo)
	if err != nil {
		return err
	}
	return ok(c, "professor atualizado com sucesso", dto.NewProfessorResponse(professor))
}

// Delete DELETE /professores/:id.
func (h *ProfessorsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteProfessor(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return okMessage(c, "professor removido com sucesso")
}
