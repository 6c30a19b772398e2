package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/siga-edu/academic-service/internal/domain"
)

// StaffRepository handles persistence for staff profiles.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffMember) error
	Update(ctx context.Context, staff *domain.StaffMember) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	GetByUserID(ctx context.Context, userID string) (*domain.StaffMember, error)
	List(ctx context.Context, limit, offset int) ([]domain.StaffMember, error)
	WithTx(tx DBTX) StaffRepository
}

type staffRepository struct {
	db DBTX
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(db DBTX) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) WithTx(tx DBTX) StaffRepository {
	return &staffRepository{db: tx}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        INSERT INTO staff_members (user_id, name, matricula, cargo, setor, active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		staff.UserID,
		staff.Name,
		staff.Matricula,
		staff.Cargo,
		staff.Setor,
		staff.Active,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        UPDATE staff_members
        SET name=$1, cargo=$2, setor=$3, active=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.db.Exec(ctx, query,
		staff.Name,
		staff.Cargo,
		staff.Setor,
		staff.Active,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM staff_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	const query = `
        SELECT id, user_id, name, matricula, cargo, setor, active, created_at, updated_at
        FROM staff_members WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *staffRepository) GetByUserID(ctx context.Context, userID string) (*domain.StaffMember, error) {
	const query = `
        SELECT id, user_id, name, matricula, cargo, setor, active, created_at, updated_at
        FROM staff_members WHERE user_id=$1`
	return r.scanOne(ctx, query, userID)
}

func (r *staffRepository) scanOne(ctx context.Context, query string, arg any) (*domain.StaffMember, error) {
	var staff domain.StaffMember
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.UserID,
		&staff.Name,
		&staff.Matricula,
		&staff.Cargo,
		&staff.Setor,
		&staff.Active,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context, limit, offset int) ([]domain.StaffMember, error) {
	const query = `
        SELECT id, user_id, name, matricula, cargo, setor, active, created_at, updated_at
        FROM staff_members ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.StaffMember
	for rows.Next() {
		var staff domain.StaffMember
		if err := rows.Scan(
			&staff.ID,
			&staff.UserID,
			&staff.Name,
			&staff.Matricula,
			&staff.Cargo,
			&staff.Setor,
			&staff.Active,
			&staff.CreatedAt,
			&staff.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, staff)
	}
	return members, rows.Err()
}
