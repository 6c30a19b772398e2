package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/service"
)

// StaffHandler manages administrative staff profiles.
type StaffHandler struct {
	service *service.PeopleService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(peopleService *service.PeopleService) *StaffHandler {
	return &StaffHandler{service: peopleService}
}

// Create POST /funcionarios.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffCreateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	staff, err := h.service.CreateStaff(c.UserContext(), actorID(c), service.StaffCreateInput{
		Nome:      req.Nome,
		Matricula: req.Matricula,
		Cargo:     req.Cargo,
		Setor:     req.Setor,
		Email:     req.Email,
		Senha:     req.Senha,
	})
	if err != nil {
		return err
	}
	return created(c, "funcionário criado com sucesso", dto.NewStaffResponse(staff))
}

// List GET /funcionarios.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	page, err := validate.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return err
	}
	members, err := h.service.ListStaff(c.UserContext(), page.Limit, page.Offset())
	if err != nil {
		return err
	}
	items := make([]dto.StaffResponse, 0, len(members))
	for i := range members {
		items = append(items, dto.NewStaffResponse(&members[i]))
	}
	return okData(c, items)
}

// Get GET /funcionarios/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	staff, err := h.service.GetStaff(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return okData(c, dto.NewStaffResponse(staff))
}

// Update PUT /funcionarios/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.StaffUpdateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	staff, err := h.service.UpdateStaff(c.UserContext(), actorID(c), c.Params("id"), req.Nome, req.Cargo, req.Setor, req.Ativo)
	if err != nil {
		return err
	}
	return ok(c, "funcionário atualizado com sucesso", dto.NewStaffResponse(staff))
}

// Delete DELETE /funcionarios/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteStaff(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return okMessage(c, "funcionário removido com sucesso")
}
