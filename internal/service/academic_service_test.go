package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/repository"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

type stubEffectivenessRepo struct {
	records map[string]domain.EffectivenessRecord
	updates int
}

func newStubEffectivenessRepo(records ...domain.EffectivenessRecord) *stubEffectivenessRepo {
	stored := make(map[string]domain.EffectivenessRecord, len(records))
	for _, rec := range records {
		stored[rec.ID] = rec
	}
	return &stubEffectivenessRepo{records: stored}
}

func (r *stubEffectivenessRepo) Create(_ context.Context, rec *domain.EffectivenessRecord) error {
	r.records[rec.ID] = *rec
	return nil
}

func (r *stubEffectivenessRepo) Update(_ context.Context, rec *domain.EffectivenessRecord) error {
	if _, ok := r.records[rec.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.records[rec.ID] = *rec
	r.updates++
	return nil
}

func (r *stubEffectivenessRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.records, id)
	return nil
}

func (r *stubEffectivenessRepo) GetByID(_ context.Context, id string) (*domain.EffectivenessRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &rec, nil
}

func (r *stubEffectivenessRepo) List(_ context.Context, _ repository.EffectivenessFilter) ([]domain.EffectivenessRecord, error) {
	out := make([]domain.EffectivenessRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func newEffectivenessService(repo repository.EffectivenessRepository) *AcademicService {
	return NewAcademicService(AcademicDependencies{
		EffectivenessRepo: repo,
		Dispatcher:        events.NewInMemoryDispatcher(),
	})
}

func intPtr(v int) *int { return &v }

func TestUpdateEffectivenessRejectsExcessAbsences(t *testing.T) {
	repo := newStubEffectivenessRepo(domain.EffectivenessRecord{
		ID:           "rec-1",
		ProfessorID:  "prof-1",
		Mes:          3,
		Ano:          2026,
		DiasLetivos:  20,
		DiasAusentes: 2,
	})
	svc := newEffectivenessService(repo)

	_, err := svc.UpdateEffectiveness(context.Background(), "actor-1", "rec-1", nil, intPtr(30), nil)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, "Validation Error", domainErr.Code)
	require.Equal(t, "dias_ausentes", domainErr.Details[0].Field)

	// The stored record keeps its original counts.
	require.Zero(t, repo.updates)
	stored, err := repo.GetByID(context.Background(), "rec-1")
	require.NoError(t, err)
	require.Equal(t, 2, stored.DiasAusentes)
}

func TestUpdateEffectivenessRejectsLoweredSchoolDays(t *testing.T) {
	repo := newStubEffectivenessRepo(domain.EffectivenessRecord{
		ID:           "rec-1",
		ProfessorID:  "prof-1",
		Mes:          3,
		Ano:          2026,
		DiasLetivos:  22,
		DiasAusentes: 15,
	})
	svc := newEffectivenessService(repo)

	// Shrinking the month below the stored absence count breaks the merged record.
	_, err := svc.UpdateEffectiveness(context.Background(), "actor-1", "rec-1", intPtr(10), nil, nil)
	require.Error(t, err)
	require.Zero(t, repo.updates)
}

func TestUpdateEffectivenessAppliesPresentFields(t *testing.T) {
	repo := newStubEffectivenessRepo(domain.EffectivenessRecord{
		ID:           "rec-1",
		ProfessorID:  "prof-1",
		Mes:          3,
		Ano:          2026,
		DiasLetivos:  20,
		DiasAusentes: 2,
	})
	svc := newEffectivenessService(repo)

	obs := "licença médica"
	rec, err := svc.UpdateEffectiveness(context.Background(), "actor-1", "rec-1", nil, intPtr(5), &obs)
	require.NoError(t, err)
	require.Equal(t, 5, rec.DiasAusentes)
	require.Equal(t, 20, rec.DiasLetivos)
	require.Equal(t, "licença médica", rec.Observacao)
	require.Equal(t, 1, repo.updates)
}
