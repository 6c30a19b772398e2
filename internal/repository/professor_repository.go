package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/siga-edu/academic-service/internal/domain"
)

// ProfessorRepository handles persistence for professor profiles.
type ProfessorRepository interface {
	Create(ctx context.Context, professor *domain.Professor) error
	Update(ctx context.Context, professor *domain.Professor) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Professor, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Professor, error)
	List(ctx context.Context, limit, offset int) ([]domain.Professor, error)
	WithTx(tx DBTX) ProfessorRepository
}

type professorRepository struct {
	db DBTX
}

// NewProfessorRepository instantiates the repository.
func NewProfessorRepository(db DBTX) ProfessorRepository {
	return &professorRepository{db: db}
}

func (r *professorRepository) WithTx(tx DBTX) ProfessorRepository {
	return &professorRepository{db: tx}
}

func (r *professorRepository) Create(ctx context.Context, professor *domain.Professor) error {
	const query = `
        INSERT INTO professors (user_id, name, matricula, titulacao, departamento, active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		professor.UserID,
		professor.Name,
		professor.Matricula,
		professor.Titulacao,
		professor.Departamento,
		professor.Active,
	).Scan(&professor.ID, &professor.CreatedAt, &professor.UpdatedAt)
}

func (r *professorRepository) Update(ctx context.Context, professor *domain.Professor) error {
	const query = `
        UPDATE professors
        SET name=$1, titulacao=$2, departamento=$3, active=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.db.Exec(ctx, query,
		professor.Name,
		professor.Titulacao,
		professor.Departamento,
		professor.Active,
		professor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *professorRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM professors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *professorRepository) GetByID(ctx context.Context, id string) (*domain.Professor, error) {
	const query = `
        SELECT id, user_id, name, matricula, titulacao, departamento, active, created_at, updated_at
        FROM professors WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *professorRepository) GetByUserID(ctx context.Context, userID string) (*domain.Professor, error) {
	const query = `
        SELECT id, user_id, name, matricula, titulacao, departamento, active, created_at, updated_at
        FROM professors WHERE user_id=$1`
	return r.scanOne(ctx, query, userID)
}

func (r *professorRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Professor, error) {
	var professor domain.Professor
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&professor.ID,
		&professor.UserID,
		&professor.Name,
		&professor.Matricula,
		&professor.Titulacao,
		&professor.Departamento,
		&professor.Active,
		&professor.CreatedAt,
		&professor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *professorRepository) List(ctx context.Context, limit, offset int) ([]domain.Professor, error) {
	const query = `
        SELECT id, user_id, name, matricula, titulacao, departamento, active, created_at, updated_at
        FROM professors ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var professors []domain.Professor
	for rows.Next() {
		var professor domain.Professor
		if err := rows.Scan(
			&professor.ID,
			&professor.UserID,
			&professor.Name,
			&professor.Matricula,
			&professor.Titulacao,
			&professor.Departamento,
			&professor.Active,
			&professor.CreatedAt,
			&professor.UpdatedAt,
		); err != nil {
			return nil, err
		}
		professors = append(professors, professor)
	}
	return professors, rows.Err()
}
