package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

// Fixed display rank for seat classes: Economy < Business < First.
const seatClassRankSQL = `CASE s.seat_class WHEN 'EC' THEN 0 WHEN 'BC' THEN 1 WHEN 'FC' THEN 2 ELSE 3 END`

type SeatConfigurationRepository interface {
	Create(ctx context.Context, config *domain.SeatConfiguration) error
	GetByID(ctx context.Context, id int64) (*domain.SeatConfiguration, error)
	// List returns configurations ordered by airplane model name, then
	// seat class rank.
	List(ctx context.Context) ([]domain.SeatConfiguration, error)
	// ListByAirplane returns the airplane's configurations, one per
	// configured seat class, ordered by class rank.
	ListByAirplane(ctx context.Context, airplaneID int64) ([]domain.SeatConfiguration, error)
	Update(ctx context.Context, config *domain.SeatConfiguration) error
	Delete(ctx context.Context, id int64) error
}

type PGSeatConfigurationRepository struct {
	db *pgxpool.Pool
}

func NewSeatConfigurationRepository(db *pgxpool.Pool) SeatConfigurationRepository {
	return &PGSeatConfigurationRepository{db: db}
}

func (r *PGSeatConfigurationRepository) Create(ctx context.Context, config *domain.SeatConfiguration) error {
	err := r.db.QueryRow(ctx, `INSERT INTO seat_configuration (seat_class, rows, seats_in_row, airplane_id)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		config.SeatClass, config.Rows, config.SeatsInRow, config.AirplaneID).Scan(&config.ID)
	return wrapPgError(err)
}

func (r *PGSeatConfigurationRepository) GetByID(ctx context.Context, id int64) (*domain.SeatConfiguration, error) {
	row := r.db.QueryRow(ctx, `SELECT s.id, s.seat_class, s.rows, s.seats_in_row, s.airplane_id, a.model_name
		FROM seat_configuration s JOIN airplane a ON a.id = s.airplane_id WHERE s.id=$1`, id)
	var c domain.SeatConfiguration
	if err := row.Scan(&c.ID, &c.SeatClass, &c.Rows, &c.SeatsInRow, &c.AirplaneID, &c.AirplaneModelName); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGSeatConfigurationRepository) List(ctx context.Context) ([]domain.SeatConfiguration, error) {
	rows, err := r.db.Query(ctx, `SELECT s.id, s.seat_class, s.rows, s.seats_in_row, s.airplane_id, a.model_name
		FROM seat_configuration s JOIN airplane a ON a.id = s.airplane_id
		ORDER BY a.model_name, `+seatClassRankSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeatConfigurations(rows)
}

func (r *PGSeatConfigurationRepository) ListByAirplane(ctx context.Context, airplaneID int64) ([]domain.SeatConfiguration, error) {
	rows, err := r.db.Query(ctx, `SELECT s.id, s.seat_class, s.rows, s.seats_in_row, s.airplane_id, a.model_name
		FROM seat_configuration s JOIN airplane a ON a.id = s.airplane_id
		WHERE s.airplane_id=$1
		ORDER BY `+seatClassRankSQL, airplaneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeatConfigurations(rows)
}

func (r *PGSeatConfigurationRepository) Update(ctx context.Context, config *domain.SeatConfiguration) error {
	res, err := r.db.Exec(ctx, `UPDATE seat_configuration SET seat_class=$1, rows=$2, seats_in_row=$3, airplane_id=$4 WHERE id=$5`,
		config.SeatClass, config.Rows, config.SeatsInRow, config.AirplaneID, config.ID)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGSeatConfigurationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM seat_configuration WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func scanSeatConfigurations(rows pgx.Rows) ([]domain.SeatConfiguration, error) {
	configs := make([]domain.SeatConfiguration, 0)
	for rows.Next() {
		var c domain.SeatConfiguration
		if err := rows.Scan(&c.ID, &c.SeatClass, &c.Rows, &c.SeatsInRow, &c.AirplaneID, &c.AirplaneModelName); err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

var _ SeatConfigurationRepository = (*PGSeatConfigurationRepository)(nil)
