package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/service"
)

// PermissionsHandler manages the permission catalog and per-user grants.
type PermissionsHandler struct {
	service *service.PermissionService
}

// NewPermissionsHandler constructs handler.
func NewPermissionsHandler(permissionService *service.PermissionService) *PermissionsHandler {
	return &PermissionsHandler{service: permissionService}
}

// Create POST /permissoes.
func (h *PermissionsHandler) Create(c *fiber.Ctx) error {
	var req dto.PermissionCreateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	permission, err := h.service.Create(c.UserContext(), actorID(c), req.Nome, req.Descricao)
	if err != nil {
		return err
	}
	return created(c, "permissão criada com sucesso", dto.NewPermissionResponse(permission))
}

// List GET /permissoes.
func (h *PermissionsHandler) List(c *fiber.Ctx) error {
	page, err := validate.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return err
	}
	permissions, err := h.service.List(c.UserContext(), page.Limit, page.Offset())
	if err != nil {
		return err
	}
	items := make([]dto.PermissionResponse, 0, len(permissions))
	for i := range permissions {
		items = append(items, dto.NewPermissionResponse(&permissions[i]))
	}
	return okData(c, items)
}

// Delete DELETE /permissoes/:id.
func (h *PermissionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return okMessage(c, "permissão removida com sucesso")
}

// Grant POST /permissoes/conceder.
func (h *PermissionsHandler) Grant(c *fiber.Ctx) error {
	var req dto.GrantRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := h.service.Grant(c.UserContext(), actorID(c), req.UsuarioID, req.Nome); err != nil {
		return err
	}
	return okMessage(c, "permissão concedida com sucesso")
}

// Revoke POST /permissoes/revogar.
func (h *PermissionsHandler) Revoke(c *fiber.Ctx) error {
	var req dto.GrantRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := h.service.Revoke(c.UserContext(), actorID(c), req.UsuarioID, req.Nome); err != nil {
		return err
	}
	return okMessage(c, "permissão revogada com sucesso")
}

// ListForUser GET /usuarios/:id/permissoes.
func (h *PermissionsHandler) ListForUser(c *fiber.Ctx) error {
	names, err := h.service.ListUserPermissions(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return okData(c, names)
}
