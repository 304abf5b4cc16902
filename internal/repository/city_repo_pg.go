package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

type CityRepository interface {
	Create(ctx context.Context, city *domain.City) error
	GetByID(ctx context.Context, id int64) (*domain.City, error)
	List(ctx context.Context) ([]domain.City, error)
	Update(ctx context.Context, city *domain.City) error
	Delete(ctx context.Context, id int64) error
}

type PGCityRepository struct {
	db *pgxpool.Pool
}

func NewCityRepository(db *pgxpool.Pool) CityRepository {
	return &PGCityRepository{db: db}
}

func (r *PGCityRepository) Create(ctx context.Context, city *domain.City) error {
	err := r.db.QueryRow(ctx, `INSERT INTO city (name, country) VALUES ($1, $2) RETURNING id`, city.Name, city.Country).Scan(&city.ID)
	return wrapPgError(err)
}

func (r *PGCityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, country FROM city WHERE id=$1`, id)
	var c domain.City
	if err := row.Scan(&c.ID, &c.Name, &c.Country); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGCityRepository) List(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, country FROM city ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *PGCityRepository) Update(ctx context.Context, city *domain.City) error {
	res, err := r.db.Exec(ctx, `UPDATE city SET name=$1, country=$2 WHERE id=$3`, city.Name, city.Country, city.ID)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGCityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM city WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

var _ CityRepository = (*PGCityRepository)(nil)
