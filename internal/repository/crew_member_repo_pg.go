package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

type CrewMemberRepository interface {
	Create(ctx context.Context, member *domain.CrewMember) error
	GetByID(ctx context.Context, id int64) (*domain.CrewMember, error)
	// List returns members ordered by role name, then first name.
	List(ctx context.Context) ([]domain.CrewMember, error)
	// ListByRole returns members of the named role, used to populate
	// role-scoped crew group pickers.
	ListByRole(ctx context.Context, roleName string) ([]domain.CrewMember, error)
	Update(ctx context.Context, member *domain.CrewMember) error
	Delete(ctx context.Context, id int64) error
}

type PGCrewMemberRepository struct {
	db *pgxpool.Pool
}

func NewCrewMemberRepository(db *pgxpool.Pool) CrewMemberRepository {
	return &PGCrewMemberRepository{db: db}
}

func (r *PGCrewMemberRepository) Create(ctx context.Context, member *domain.CrewMember) error {
	err := r.db.QueryRow(ctx, `INSERT INTO crew_member (first_name, last_name, role_id) VALUES ($1, $2, $3) RETURNING id`,
		member.FirstName, member.LastName, member.RoleID).Scan(&member.ID)
	return wrapPgError(err)
}

func (r *PGCrewMemberRepository) GetByID(ctx context.Context, id int64) (*domain.CrewMember, error) {
	row := r.db.QueryRow(ctx, `SELECT m.id, m.first_name, m.last_name, m.role_id, r.name
		FROM crew_member m JOIN role r ON r.id = m.role_id WHERE m.id=$1`, id)
	var m domain.CrewMember
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.RoleID, &m.RoleName); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PGCrewMemberRepository) List(ctx context.Context) ([]domain.CrewMember, error) {
	rows, err := r.db.Query(ctx, `SELECT m.id, m.first_name, m.last_name, m.role_id, r.name
		FROM crew_member m JOIN role r ON r.id = m.role_id
		ORDER BY r.name, m.first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCrewMembers(rows)
}

func (r *PGCrewMemberRepository) ListByRole(ctx context.Context, roleName string) ([]domain.CrewMember, error) {
	rows, err := r.db.Query(ctx, `SELECT m.id, m.first_name, m.last_name, m.role_id, r.name
		FROM crew_member m JOIN role r ON r.id = m.role_id
		WHERE r.name = $1
		ORDER BY m.first_name`, roleName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCrewMembers(rows)
}

func (r *PGCrewMemberRepository) Update(ctx context.Context, member *domain.CrewMember) error {
	res, err := r.db.Exec(ctx, `UPDATE crew_member SET first_name=$1, last_name=$2, role_id=$3 WHERE id=$4`,
		member.FirstName, member.LastName, member.RoleID, member.ID)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGCrewMemberRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM crew_member WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func scanCrewMembers(rows pgx.Rows) ([]domain.CrewMember, error) {
	members := make([]domain.CrewMember, 0)
	for rows.Next() {
		var m domain.CrewMember
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.RoleID, &m.RoleName); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

var _ CrewMemberRepository = (*PGCrewMemberRepository)(nil)
