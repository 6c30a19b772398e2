package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/siga-edu/academic-service/internal/domain"
)

// PermissionRepository handles permissions and their user grants.
type PermissionRepository interface {
	Create(ctx context.Context, permission *domain.Permission) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Permission, error)
	GetByName(ctx context.Context, name string) (*domain.Permission, error)
	List(ctx context.Context, limit, offset int) ([]domain.Permission, error)
	Grant(ctx context.Context, userID, permissionID string) error
	Revoke(ctx context.Context, userID, permissionID string) error
	ListNamesForUser(ctx context.Context, userID string) ([]string, error)
	WithTx(tx DBTX) PermissionRepository
}

type permissionRepository struct {
	db DBTX
}

// NewPermissionRepository instantiates the repository.
func NewPermissionRepository(db DBTX) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) WithTx(tx DBTX) PermissionRepository {
	return &permissionRepository{db: tx}
}

func (r *permissionRepository) Create(ctx context.Context, permission *domain.Permission) error {
	const query = `
        INSERT INTO permissions (name, description)
        VALUES ($1,$2)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		permission.Name,
		permission.Description,
	).Scan(&permission.ID, &permission.CreatedAt)
}

func (r *permissionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM permissions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *permissionRepository) GetByID(ctx context.Context, id string) (*domain.Permission, error) {
	const query = `SELECT id, name, description, created_at FROM permissions WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *permissionRepository) GetByName(ctx context.Context, name string) (*domain.Permission, error) {
	const query = `SELECT id, name, description, created_at FROM permissions WHERE name=$1`
	return r.scanOne(ctx, query, name)
}

func (r *permissionRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Permission, error) {
	var permission domain.Permission
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&permission.ID,
		&permission.Name,
		&permission.Description,
		&permission.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepository) List(ctx context.Context, limit, offset int) ([]domain.Permission, error) {
	const query = `
        SELECT id, name, description, created_at
        FROM permissions ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []domain.Permission
	for rows.Next() {
		var permission domain.Permission
		if err := rows.Scan(
			&permission.ID,
			&permission.Name,
			&permission.Description,
			&permission.CreatedAt,
		); err != nil {
			return nil, err
		}
		permissions = append(permissions, permission)
	}
	return permissions, rows.Err()
}

func (r *permissionRepository) Grant(ctx context.Context, userID, permissionID string) error {
	const query = `
        INSERT INTO user_permissions (user_id, permission_id)
        VALUES ($1,$2)
        ON CONFLICT (user_id, permission_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query, userID, permissionID)
	return err
}

func (r *permissionRepository) Revoke(ctx context.Context, userID, permissionID string) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM user_permissions WHERE user_id=$1 AND permission_id=$2`,
		userID, permissionID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *permissionRepository) ListNamesForUser(ctx context.Context, userID string) ([]string, error) {
	const query = `
        SELECT p.name
        FROM user_permissions up
        JOIN permissions p ON p.id = up.permission_id
        WHERE up.user_id=$1
        ORDER BY p.name`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
