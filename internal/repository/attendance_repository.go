package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/siga-edu/academic-service/internal/domain"
)

// AttendanceFilter captures attendance listing parameters.
type AttendanceFilter struct {
	ProfessorID *string
	CourseID    *string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// AttendanceRepository handles persistence for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, rec *domain.AttendanceRecord) error
	Update(ctx context.Context, rec *domain.AttendanceRecord) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error)
	List(ctx context.Context, filter AttendanceFilter) ([]domain.AttendanceRecord, error)
}

type attendanceRepository struct {
	db DBTX
}

// NewAttendanceRepository instantiates the repository.
func NewAttendanceRepository(db DBTX) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	const query = `
        INSERT INTO attendance_records (professor_id, course_id, record_date, present, observacao)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		rec.ProfessorID,
		rec.CourseID,
		rec.Date,
		rec.Present,
		rec.Observacao,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *attendanceRepository) Update(ctx context.Context, rec *domain.AttendanceRecord) error {
	const query = `
        UPDATE attendance_records
        SET present=$1, observacao=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.db.Exec(ctx, query, rec.Present, rec.Observacao, rec.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM attendance_records WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	const query = `
        SELECT id, professor_id, course_id, record_date, present, observacao, created_at, updated_at
        FROM attendance_records WHERE id=$1`

	var rec domain.AttendanceRecord
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.ProfessorID,
		&rec.CourseID,
		&rec.Date,
		&rec.Present,
		&rec.Observacao,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]domain.AttendanceRecord, error) {
	query := `
        SELECT id, professor_id, course_id, record_date, present, observacao, created_at, updated_at
        FROM attendance_records`
	args := []any{}
	clauses := []string{}

	if filter.ProfessorID != nil {
		args = append(args, *filter.ProfessorID)
		clauses = append(clauses, fmt.Sprintf("professor_id=$%d", len(args)))
	}
	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		clauses = append(clauses, fmt.Sprintf("course_id=$%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("record_date>=$%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("record_date<=$%d", len(args)))
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

	var records []domain.AttendanceRecord
	for rows.Next() {
		var rec domain.AttendanceRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.ProfessorID,
			&rec.CourseID,
			&rec.Date,
			&rec.Present,
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
