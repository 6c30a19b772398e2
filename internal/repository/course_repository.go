package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/siga-edu/academic-service/internal/domain"
)

// CourseFilter captures course listing parameters.
type CourseFilter struct {
	ProfessorID *string
	Limit       int
	Offset      int
}

// CourseRepository handles persistence for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, filter CourseFilter) ([]domain.Course, error)
}

type courseRepository struct {
	db DBTX
}

// NewCourseRepository instantiates the repository.
func NewCourseRepository(db DBTX) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (code, name, carga_horaria, professor_id, active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		course.Code,
		course.Name,
		course.CargaHoraria,
		course.ProfessorID,
		course.Active,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	const query = `
        UPDATE courses
        SET name=$1, carga_horaria=$2, professor_id=$3, active=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.db.Exec(ctx, query,
		course.Name,
		course.CargaHoraria,
		course.ProfessorID,
		course.Active,
		course.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	const query = `
        SELECT id, code, name, carga_horaria, professor_id, active, created_at, updated_at
        FROM courses WHERE id=$1`

	var course domain.Course
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.CargaHoraria,
		&course.ProfessorID,
		&course.Active,
		&course.CreatedAt,
		&course.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context, filter CourseFilter) ([]domain.Course, error) {
	query := `
        SELECT id, code, name, carga_horaria, professor_id, active, created_at, updated_at
        FROM courses`
	args := []any{}

	if filter.ProfessorID != nil {
		args = append(args, *filter.ProfessorID)
		query += " WHERE professor_id=$1"
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY code LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.CargaHoraria,
			&course.ProfessorID,
			&course.Active,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}
