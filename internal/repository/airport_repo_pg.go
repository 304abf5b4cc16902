package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

type AirportRepository interface {
	Create(ctx context.Context, airport *domain.Airport) error
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	// List returns airports ordered by city country, city name, airport
	// name. cityName, when non-empty, filters by city name substring.
	List(ctx context.Context, cityName string) ([]domain.Airport, error)
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airport (name, iata_code, city_id) VALUES ($1, $2, $3) RETURNING id`,
		airport.Name, airport.IATACode, airport.CityID).Scan(&airport.ID)
	return wrapPgError(err)
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT a.id, a.name, a.iata_code, a.city_id, c.name, c.country
		FROM airport a JOIN city c ON c.id = a.city_id WHERE a.id=$1`, id)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Name, &a.IATACode, &a.CityID, &a.CityName, &a.CityCountry); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) List(ctx context.Context, cityName string) ([]domain.Airport, error) {
	query := `SELECT a.id, a.name, a.iata_code, a.city_id, c.name, c.country
		FROM airport a JOIN city c ON c.id = a.city_id`
	args := []any{}
	if cityName != "" {
		query += ` WHERE c.name ILIKE '%' || $1 || '%'`
		args = append(args, cityName)
	}
	query += ` ORDER BY c.country, c.name, a.name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.IATACode, &a.CityID, &a.CityName, &a.CityCountry); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	res, err := r.db.Exec(ctx, `UPDATE airport SET name=$1, iata_code=$2, city_id=$3 WHERE id=$4`,
		airport.Name, airport.IATACode, airport.CityID, airport.ID)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airport WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
