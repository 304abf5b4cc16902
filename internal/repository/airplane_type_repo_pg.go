package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

type AirplaneTypeRepository interface {
	Create(ctx context.Context, at *domain.AirplaneType) error
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	List(ctx context.Context) ([]domain.AirplaneType, error)
	Update(ctx context.Context, at *domain.AirplaneType) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, at *domain.AirplaneType) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplane_type (name) VALUES ($1) RETURNING id`, at.Name).Scan(&at.ID)
	return wrapPgError(err)
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM airplane_type WHERE id=$1`, id)
	var at domain.AirplaneType
	if err := row.Scan(&at.ID, &at.Name); err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_type ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var at domain.AirplaneType
		if err := rows.Scan(&at.ID, &at.Name); err != nil {
			return nil, err
		}
		types = append(types, at)
	}
	return types, rows.Err()
}

func (r *PGAirplaneTypeRepository) Update(ctx context.Context, at *domain.AirplaneType) error {
	res, err := r.db.Exec(ctx, `UPDATE airplane_type SET name=$1 WHERE id=$2`, at.Name, at.ID)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airplane_type WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

var _ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)
