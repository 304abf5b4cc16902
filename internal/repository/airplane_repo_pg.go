package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

type AirplaneRepository interface {
	Create(ctx context.Context, airplane *domain.Airplane) error
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	// List returns airplanes ordered by type name, then model name.
	List(ctx context.Context) ([]domain.Airplane, error)
	Update(ctx context.Context, airplane *domain.Airplane) error
	// Delete cascades to the airplane's seat configurations; flights
	// referencing the airplane keep flying with the reference cleared.
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplane (model_name, type_id) VALUES ($1, $2) RETURNING id`,
		airplane.ModelName, airplane.TypeID).Scan(&airplane.ID)
	return wrapPgError(err)
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT a.id, a.model_name, a.type_id, t.name
		FROM airplane a JOIN airplane_type t ON t.id = a.type_id WHERE a.id=$1`, id)
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.ModelName, &a.TypeID, &a.TypeName); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT a.id, a.model_name, a.type_id, t.name
		FROM airplane a JOIN airplane_type t ON t.id = a.type_id
		ORDER BY t.name, a.model_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.ModelName, &a.TypeID, &a.TypeName); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	res, err := r.db.Exec(ctx, `UPDATE airplane SET model_name=$1, type_id=$2 WHERE id=$3`,
		airplane.ModelName, airplane.TypeID, airplane.ID)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airplane WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

var _ AirplaneRepository = (*PGAirplaneRepository)(nil)
