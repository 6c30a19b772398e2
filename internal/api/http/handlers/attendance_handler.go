package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/api/dto"
	"github.com/siga-edu/academic-service/internal/api/validate"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/repository"
	"github.com/siga-edu/academic-service/internal/service"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

// AttendanceHandler manages professor attendance records.
type AttendanceHandler struct {
	service *service.AcademicService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(academicService *service.AcademicService) *AttendanceHandler {
	return &AttendanceHandler{service: academicService}
}

// Create POST /frequencias.
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var req dto.AttendanceCreateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	date, err := req.Validate()
	if err != nil {
		return err
	}

	rec := &domain.AttendanceRecord{
		ProfessorID: req.ProfessorID,
		CourseID:    req.CursoID,
		Date:        date,
		Present:     *req.Presente,
		Observacao:  req.Observacao,
	}
	if err := h.service.CreateAttendance(c.UserContext(), actorID(c), rec); err != nil {
		return err
	}
	return created(c, "frequência registrada com sucesso", dto.NewAttendanceResponse(rec))
}

// List GET /frequencias.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	page, err := validate.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return err
	}
	filter := repository.AttendanceFilter{Limit: page.Limit, Offset: page.Offset()}
	if professorID := c.Query("professor_id"); professorID != "" {
		filter.ProfessorID = &professorID
	}
	if courseID := c.Query("curso_id"); courseID != "" {
		filter.CourseID = &courseID
	}
	if from, ok, err := queryDate(c, "de"); err != nil {
		return err
	} else if ok {
		filter.From = &from
	}
	if to, ok, err := queryDate(c, "ate"); err != nil {
		return err
	} else if ok {
		filter.To = &to
	}

	records, err := h.service.ListAttendance(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.NewAttendanceResponse(&records[i]))
	}
	return okData(c, items)
}

// Get GET /frequencias/:id.
func (h *AttendanceHandler) Get(c *fiber.Ctx) error {
	rec, err := h.service.GetAttendance(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return okData(c, dto.NewAttendanceResponse(rec))
}

// Update PUT /frequencias/:id.
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	var req dto.AttendanceUpdateRequest
	if err := validate.DecodeStrict(c.Body(), &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	rec, err := h.service.UpdateAttendance(c.UserContext(), actorID(c), c.Params("id"), req.Presente, req.Observacao)
	if err != nil {
		return err
	}
	return ok(c, "frequência atualizada com sucesso", dto.NewAttendanceResponse(rec))
}

// Delete DELETE /frequencias/:id.
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteAttendance(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return okMessage(c, "frequência removida com sucesso")
}

func queryDate(c *fiber.Ctx, name string) (time.Time, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, false, nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false, apperrors.NewBadRequest("parâmetro " + name + " inválido, use o formato AAAA-MM-DD")
	}
	return date, true, nil
}
