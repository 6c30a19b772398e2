package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/service"
)

// UsersHandler manages standalone user accounts.
type UsersHandler struct {
	service *service.PeopleService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(peopleService *service.PeopleService) *UsersHandler {
	return &UsersHandler{service: peopleService}
}

// Me GET /perfil. Returns the caller's account plus the linked professor or
// staff record when one exists.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.UserContext(), actorID(c))
	if err != nil {
		return err
	}

	payload := fiber.Map{"usuario": dto.NewUserResponse(profile.User)}
	if profile.Professor != nil {
		payload["professor"] = dto.NewProfessorResponse(profile.Professor)
	}
	if profile.Staff != nil {
		payload["funcionario"] = dto.NewStaffResponse(profile.Staff)
	}
	return okData(c, payload)
}

// Create POST /usuarios.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.UserContext(), actorID(c), req.Email, req.Senha, req.Tipo)
	if err != nil {
		return err
	}
	return created(c, "usuário criado com sucesso", dto.NewUserResponse(user))
}

// List GET /usuarios.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	page, err := validate.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return err
	}
	users, err := h.service.ListUsers(c.UserContext(), page.Limit, page.Offset())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return okData(c, items)
}

// Get GET /usuarios/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return okData(c, dto.NewUserResponse(user))
}

// Update PUT /usuarios/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.UserContext(), actorID(c), c.Params("id"), req.Email, req.Senha, req.Ativo)
	if err != nil {
		return err
	}
	return ok(c, "usuário atualizado com sucesso", dto.NewUserResponse(user))
}

// Delete DELETE /usuarios/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return okMessage(c, "usuário removido com sucesso")
}
