package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

// Slot names for the four role-scoped membership sets of a crew group.
const (
	slotPilot      = "pilot"
	slotSteward    = "steward"
	slotTechnician = "technician"
	slotAdditional = "additional"
)

type CrewGroupRepository interface {
	Create(ctx context.Context, members domain.CrewGroupMembers) (*domain.CrewGroup, error)
	GetByID(ctx context.Context, id int64) (*domain.CrewGroup, error)
	List(ctx context.Context) ([]domain.CrewGroup, error)
	ReplaceMembers(ctx context.Context, id int64, members domain.CrewGroupMembers) (*domain.CrewGroup, error)
	Delete(ctx context.Context, id int64) error
}

type PGCrewGroupRepository struct {
	db *pgxpool.Pool
}

func NewCrewGroupRepository(db *pgxpool.Pool) CrewGroupRepository {
	return &PGCrewGroupRepository{db: db}
}

func (r *PGCrewGroupRepository) Create(ctx context.Context, members domain.CrewGroupMembers) (*domain.CrewGroup, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id int64
	if err := tx.QueryRow(ctx, `INSERT INTO crew_group DEFAULT VALUES RETURNING id`).Scan(&id); err != nil {
		return nil, wrapPgError(err)
	}
	if err := insertCrewGroupMembers(ctx, tx, id, members); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PGCrewGroupRepository) GetByID(ctx context.Context, id int64) (*domain.CrewGroup, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM crew_group WHERE id=$1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, pgxNoRows
	}

	group := &domain.CrewGroup{
		ID:              id,
		Pilots:          make([]domain.CrewMember, 0),
		Stewards:        make([]domain.CrewMember, 0),
		Technicians:     make([]domain.CrewMember, 0),
		AdditionalStaff: make([]domain.CrewMember, 0),
	}

	rows, err := r.db.Query(ctx, `SELECT g.slot, m.id, m.first_name, m.last_name, m.role_id, r.name
		FROM crew_group_member g
		JOIN crew_member m ON m.id = g.crew_member_id
		JOIN role r ON r.id = m.role_id
		WHERE g.crew_group_id=$1
		ORDER BY g.slot, m.first_name`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var slot string
		var m domain.CrewMember
		if err := rows.Scan(&slot, &m.ID, &m.FirstName, &m.LastName, &m.RoleID, &m.RoleName); err != nil {
			return nil, err
		}
		switch slot {
		case slotPilot:
			group.Pilots = append(group.Pilots, m)
		case slotSteward:
			group.Stewards = append(group.Stewards, m)
		case slotTechnician:
			group.Technicians = append(group.Technicians, m)
		case slotAdditional:
			group.AdditionalStaff = append(group.AdditionalStaff, m)
		}
	}
	return group, rows.Err()
}

func (r *PGCrewGroupRepository) List(ctx context.Context) ([]domain.CrewGroup, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM crew_group ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	groups := make([]domain.CrewGroup, 0, len(ids))
	for _, id := range ids {
		g, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, nil
}

func (r *PGCrewGroupRepository) ReplaceMembers(ctx context.Context, id int64, members domain.CrewGroupMembers) (*domain.CrewGroup, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `DELETE FROM crew_group_member WHERE crew_group_id=$1`, id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM crew_group WHERE id=$1)`, id).Scan(&exists); err != nil {
			return nil, err
		}
		if !exists {
			return nil, pgxNoRows
		}
	}
	if err := insertCrewGroupMembers(ctx, tx, id, members); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PGCrewGroupRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM crew_group WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func insertCrewGroupMembers(ctx context.Context, tx pgx.Tx, groupID int64, members domain.CrewGroupMembers) error {
	slots := []struct {
		name string
		ids  []int64
	}{
		{slotPilot, members.PilotIDs},
		{slotSteward, members.StewardIDs},
		{slotTechnician, members.TechnicianIDs},
		{slotAdditional, members.AdditionalStaffIDs},
	}
	for _, slot := range slots {
		for _, memberID := range slot.ids {
			if _, err := tx.Exec(ctx, `INSERT INTO crew_group_member (crew_group_id, crew_member_id, slot) VALUES ($1, $2, $3)`,
				groupID, memberID, slot.name); err != nil {
				return wrapPgError(err)
			}
		}
	}
	return nil
}

var _ CrewGroupRepository = (*PGCrewGroupRepository)(nil)
