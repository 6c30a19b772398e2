package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/siga-edu/academic-service/internal/domain"
)

// EffectivenessFilter captures effectiveness listing parameters.
type EffectivenessFilter struct {
	ProfessorID *string
	Ano         *int
	Limit       int
	Offset      int
}

// EffectivenessRepository handles persistence for effectiveness records.
type EffectivenessRepository interface {
	Create(ctx context.Context, rec *domain.EffectivenessRecord) error
	Update(ctx context.Context, rec *domain.EffectivenessRecord) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.EffectivenessRecord, error)
	List(ctx context.Context, filter EffectivenessFilter) ([]domain.EffectivenessRecord, error)
}

type effectivenessRepository struct {
	db DBTX
}

// NewEffectivenessRepository instantiates the repository.
func NewEffectivenessRepository(db DBTX) EffectivenessRepository {
	return &effectivenessRepository{db: db}
}

func (r *effectivenessRepository) Create(ctx context.Context, rec *domain.EffectivenessRecord) error {
	const query = `
        INSERT INTO effectiveness_records (professor_id, mes, ano, dias_letivos, dias_ausentes, observacao)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		rec.ProfessorID,
		rec.Mes,
		rec.Ano,
		rec.DiasLetivos,
		rec.DiasAusentes,
		rec.Observacao,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *effectivenessRepository) Update(ctx context.Context, rec *domain.EffectivenessRecord) error {
	const query = `
        UPDATE effectiveness_records
        SET dias_letivos=$1, dias_ausentes=$2, observacao=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.db.Exec(ctx, query,
		rec.DiasLetivos,
		rec.DiasAusentes,
		rec.Observacao,
		rec.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *effectivenessRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM effectiveness_records WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *effectivenessRepository) GetByID(ctx context.Context, id string) (*domain.EffectivenessRecord, error) {
	const query = `
        SELECT id, professor_id, mes, ano, dias_letivos, dias_ausentes, observacao, created_at, updated_at
        FROM effectiveness_records WHERE id=$1`

	var rec domain.EffectivenessRecord
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.ProfessorID,
		&rec.Mes,
		&rec.Ano,
		&rec.DiasLetivos,
		&rec.DiasAusentes,
		&rec.Observacao,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *effectivenessRepository) List(ctx context.Context, filter EffectivenessFilter) ([]domain.EffectivenessRecord, error) {
	query := `
        SELECT id, professor_id, mes, ano, dias_letivos, dias_ausentes, observacao, created_at, updated_at
        FROM effectiveness_records`
	args := []any{}
	clauses := []string{}

	if filter.ProfessorID != nil {
		args = append(args, *filter.ProfessorID)
		clauses = append(clauses, fmt.Sprintf("professor_id=$%d", len(args)))
	}
	if filter.Ano != nil {
		args = append(args, *filter.Ano)
		clauses = append(clauses, fmt.Sprintf("ano=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY ano DESC, mes DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.EffectivenessRecord
	for rows.Next() {
		var rec domain.EffectivenessRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.ProfessorID,
			&rec.Mes,
			&rec.Ano,
			&rec.DiasLetivos,
			&rec.DiasAusentes,
			&rec.Observacao,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
