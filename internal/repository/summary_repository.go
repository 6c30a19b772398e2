package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/siga-edu/academic-service/internal/domain"
)

// SummaryFilter captures class summary listing parameters.
type SummaryFilter struct {
	CourseID    *string
	ProfessorID *string
	Limit       int
	Offset      int
}

// SummaryRepository handles persistence for class summaries.
type SummaryRepository interface {
	Create(ctx context.Context, summary *domain.ClassSummary) error
	Update(ctx context.Context, summary *domain.ClassSummary) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ClassSummary, error)
	List(ctx context.Context, filter SummaryFilter) ([]domain.ClassSummary, error)
}

type summaryRepository struct {
	db DBTX
}

// NewSummaryRepository instantiates the repository.
func NewSummaryRepository(db DBTX) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Create(ctx context.Context, summary *domain.ClassSummary) error {
	const query = `
        INSERT INTO class_summaries (course_id, professor_id, record_date, conteudo)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		summary.CourseID,
		summary.ProfessorID,
		summary.Date,
		summary.Conteudo,
	).Scan(&summary.ID, &summary.CreatedAt, &summary.UpdatedAt)
}

func (r *summaryRepository) Update(ctx context.Context, summary *domain.ClassSummary) error {
	const query = `
        UPDATE class_summaries SET conteudo=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.db.Exec(ctx, query, summary.Conteudo, summary.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *summaryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM class_summaries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *summaryRepository) GetByID(ctx context.Context, id string) (*domain.ClassSummary, error) {
	const query = `
        SELECT id, course_id, professor_id, record_date, conteudo, created_at, updated_at
        FROM class_summaries WHERE id=$1`

	var summary domain.ClassSummary
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&summary.ID,
		&summary.CourseID,
		&summary.ProfessorID,
		&summary.Date,
		&summary.Conteudo,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *summaryRepository) List(ctx context.Context, filter SummaryFilter) ([]domain.ClassSummary, error) {
	query := `
        SELECT id, course_id, professor_id, record_date, conteudo, created_at, updated_at
        FROM class_summaries`
	args := []any{}
	clauses := []string{}

	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		clauses = append(clauses, fmt.Sprintf("course_id=$%d", len(args)))
	}
	if filter.ProfessorID != nil {
		args = append(args, *filter.ProfessorID)
		clauses = append(clauses, fmt.Sprintf("professor_id=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY record_date DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ClassSummary
	for rows.Next() {
		var summary domain.ClassSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.CourseID,
			&summary.ProfessorID,
			&summary.Date,
			&summary.Conteudo,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
