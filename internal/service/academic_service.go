package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/repository"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

// AcademicService manages courses, attendance records, class summaries and
// monthly effectiveness records. Referential integrity between these
// entities is enforced by the store; constraint failures surface as typed
// errors further up the stack.
type AcademicService struct {
	courses       repository.CourseRepository
	attendance    repository.AttendanceRepository
	summaries     repository.SummaryRepository
	effectiveness repository.EffectivenessRepository
	dispatcher    events.Dispatcher
}

// AcademicDependencies bundles requirements for the academic service.
type AcademicDependencies struct {
	CourseRepo        repository.CourseRepository
	AttendanceRepo    repository.AttendanceRepository
	SummaryRepo       repository.SummaryRepository
	EffectivenessRepo repository.EffectivenessRepository
	Dispatcher        events.Dispatcher
}

// NewAcademicService builds the service.
func NewAcademicService(deps AcademicDependencies) *AcademicService {
	return &AcademicService{
		courses:       deps.CourseRepo,
		attendance:    deps.AttendanceRepo,
		summaries:     deps.SummaryRepo,
		effectiveness: deps.EffectivenessRepo,
		dispatcher:    deps.Dispatcher,
	}
}

// CreateCourse registers a new course.
func (s *AcademicService) CreateCourse(ctx context.Context, actorID string, course *domain.Course) error {
	course.Active = true
	if err := s.courses.Create(ctx, course); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityCreated, actorID, "cursos", course.ID)
	return nil
}

// ListCourses returns courses matching the filter.
func (s *AcademicService) ListCourses(ctx context.Context, filter repository.CourseFilter) ([]domain.Course, error) {
	return s.courses.List(ctx, filter)
}

// GetCourse loads one course.
func (s *AcademicService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// UpdateCourse applies the present fields to a course.
func (s *AcademicService) UpdateCourse(ctx context.Context, actorID, id string, nome *string, cargaHoraria *int, professorID *string, ativo *bool) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nome != nil {
		course.Name = *nome
	}
	if cargaHoraria != nil {
		course.CargaHoraria = *cargaHoraria
	}
	if professorID != nil {
		course.ProfessorID = professorID
	}
	if ativo != nil {
		course.Active = *ativo
	}
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityUpdated, actorID, "cursos", course.ID)
	return course, nil
}

// DeleteCourse removes a course. Records still referencing it make the
// delete fail.
func (s *AcademicService) DeleteCourse(ctx context.Context, actorID, id string) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityDeleted, actorID, "cursos", id)
	return nil
}

// CreateAttendance registers a presence record.
func (s *AcademicService) CreateAttendance(ctx context.Context, actorID string, rec *domain.AttendanceRecord) error {
	if err := s.attendance.Create(ctx, rec); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityCreated, actorID, "frequencias", rec.ID)
	return nil
}

// ListAttendance returns records matching the filter.
func (s *AcademicService) ListAttendance(ctx context.Context, filter repository.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	return s.attendance.List(ctx, filter)
}

// GetAttendance loads one record.
func (s *AcademicService) GetAttendance(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	return s.attendance.GetByID(ctx, id)
}

// UpdateAttendance applies the present fields to a record.
func (s *AcademicService) UpdateAttendance(ctx context.Context, actorID, id string, presente *bool, observacao *string) (*domain.AttendanceRecord, error) {
	rec, err := s.attendance.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if presente != nil {
		rec.Present = *presente
	}
	if observacao != nil {
		rec.Observacao = *observacao
	}
	if err := s.attendance.Update(ctx, rec); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityUpdated, actorID, "frequencias", rec.ID)
	return rec, nil
}

// DeleteAttendance removes a record.
func (s *AcademicService) DeleteAttendance(ctx context.Context, actorID, id string) error {
	if err := s.attendance.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityDeleted, actorID, "frequencias", id)
	return nil
}

// CreateSummary registers a class summary.
func (s *AcademicService) CreateSummary(ctx context.Context, actorID string, summary *domain.ClassSummary) error {
	if err := s.summaries.Create(ctx, summary); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityCreated, actorID, "sumarios", summary.ID)
	return nil
}

// ListSummaries returns summaries matching the filter.
func (s *AcademicService) ListSummaries(ctx context.Context, filter repository.SummaryFilter) ([]domain.ClassSummary, error) {
	return s.summaries.List(ctx, filter)
}

// GetSummary loads one summary.
func (s *AcademicService) GetSummary(ctx context.Context, id string) (*domain.ClassSummary, error) {
	return s.summaries.GetByID(ctx, id)
}

// UpdateSummary applies the present fields to a summary.
func (s *AcademicService) UpdateSummary(ctx context.Context, actorID, id string, conteudo *string) (*domain.ClassSummary, error) {
	summary, err := s.summaries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conteudo != nil {
		summary.Conteudo = *conteudo
	}
	if err := s.summaries.Update(ctx, summary); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityUpdated, actorID, "sumarios", summary.ID)
	return summary, nil
}

// DeleteSummary removes a summary.
func (s *AcademicService) DeleteSummary(ctx context.Context, actorID, id string) error {
	if err := s.summaries.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityDeleted, actorID, "sumarios", id)
	return nil
}

// CreateEffectiveness registers the monthly report. The store rejects a
// second report for the same professor and competence month.
func (s *AcademicService) CreateEffectiveness(ctx context.Context, actorID string, rec *domain.EffectivenessRecord) error {
	if err := s.effectiveness.Create(ctx, rec); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityCreated, actorID, "efetividades", rec.ID)
	return nil
}

// ListEffectiveness returns reports matching the filter.
func (s *AcademicService) ListEffectiveness(ctx context.Context, filter repository.EffectivenessFilter) ([]domain.EffectivenessRecord, error) {
	return s.effectiveness.List(ctx, filter)
}

// GetEffectiveness loads one report.
func (s *AcademicService) GetEffectiveness(ctx context.Context, id string) (*domain.EffectivenessRecord, error) {
	return s.effectiveness.GetByID(ctx, id)
}

// UpdateEffectiveness applies the present fields to a report. The absence
// refinement holds on every stored record, so the merged result is checked
// again here; a partial payload can break it even when each field passed the
// schema in isolation.
func (s *AcademicService) UpdateEffectiveness(ctx context.Context, actorID, id string, diasLetivos, diasAusentes *int, observacao *string) (*domain.EffectivenessRecord, error) {
	rec, err := s.effectiveness.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if diasLetivos != nil {
		rec.DiasLetivos = *diasLetivos
	}
	if diasAusentes != nil {
		rec.DiasAusentes = *diasAusentes
	}
	if observacao != nil {
		rec.Observacao = *observacao
	}
	if rec.DiasAusentes > rec.DiasLetivos {
		return nil, apperrors.NewValidationError("dados de entrada inválidos", []apperrors.FieldDetail{
			{Field: "dias_ausentes", Message: "não pode exceder dias_letivos"},
		})
	}
	if err := s.effectiveness.Update(ctx, rec); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityUpdated, actorID, "efetividades", rec.ID)
	return rec, nil
}

// DeleteEffectiveness removes a report.
func (s *AcademicService) DeleteEffectiveness(ctx context.Context, actorID, id string) error {
	if err := s.effectiveness.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityDeleted, actorID, "efetividades", id)
	return nil
}

func (s *AcademicService) publish(ctx context.Context, eventType events.EventType, actorID, resource, resourceID string) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Resource:   resource,
		ResourceID: resourceID,
		ActorID:    actorID,
		Timestamp:  time.Now(),
	})
}
