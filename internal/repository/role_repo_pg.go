package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id int64) error
}

type PGRoleRepository struct {
	db *pgxpool.Pool
}

func NewRoleRepository(db *pgxpool.Pool) RoleRepository {
	return &PGRoleRepository{db: db}
}

func (r *PGRoleRepository) Create(ctx context.Context, role *domain.Role) error {
	err := r.db.QueryRow(ctx, `INSERT INTO role (name) VALUES ($1) RETURNING id`, role.Name).Scan(&role.ID)
	return wrapPgError(err)
}

func (r *PGRoleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM role WHERE id=$1`, id)
	var role domain.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *PGRoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM role ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]domain.Role, 0)
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *PGRoleRepository) Update(ctx context.Context, role *domain.Role) error {
	res, err := r.db.Exec(ctx, `UPDATE role SET name=$1 WHERE id=$2`, role.Name, role.ID)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGRoleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM role WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

var _ RoleRepository = (*PGRoleRepository)(nil)
