package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

// Fixed display rank for flight status: Scheduled < Arrived < Canceled.
const flightStatusRankSQL = `CASE f.status WHEN 'SD' THEN 0 WHEN 'AD' THEN 1 WHEN 'CD' THEN 2 ELSE 3 END`

const flightColumnsSQL = `f.id, f.flight_number, f.route_id, f.airplane_id, f.crew_group_id, f.departure_time, f.arrival_time, f.status, s.name, d.name`

const flightJoinSQL = `FROM flight f
	JOIN route r ON r.id = f.route_id
	JOIN airport s ON s.id = r.source_id
	JOIN airport d ON d.id = r.destination_id`

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	// List returns flights ordered by status rank, then departure time.
	List(ctx context.Context) ([]domain.Flight, error)
	Update(ctx context.Context, flight *domain.Flight) error
	UpdateStatus(ctx context.Context, id int64, status domain.FlightStatus) (*domain.Flight, error)
	// SetCrewGroup assigns or clears (nil) the flight's crew group link.
	SetCrewGroup(ctx context.Context, id int64, crewGroupID *int64) error
	// GetAirplaneForFlight returns the airplane assigned to the flight, or
	// nil when none is assigned.
	GetAirplaneForFlight(ctx context.Context, flightID int64) (*domain.Airplane, error)
	// FindByCrewGroup returns the flight holding the given crew group, or
	// pgx.ErrNoRows when the group is unassigned.
	FindByCrewGroup(ctx context.Context, crewGroupID int64) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// The unique constraint on flight_number is the authoritative guard against
// concurrent duplicate inserts; a violation surfaces as
// domain.ConstraintViolation.
func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	if flight.Status == "" {
		flight.Status = domain.FlightStatusScheduled
	}
	err := r.db.QueryRow(ctx, `INSERT INTO flight (flight_number, route_id, airplane_id, crew_group_id, departure_time, arrival_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		flight.FlightNumber, flight.RouteID, flight.AirplaneID, flight.CrewGroupID, flight.DepartureTime, flight.ArrivalTime, flight.Status).Scan(&flight.ID)
	return wrapPgError(err)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumnsSQL+` `+flightJoinSQL+` WHERE f.id=$1`, id)
	return scanFlight(row)
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumnsSQL+` `+flightJoinSQL+`
		ORDER BY `+flightStatusRankSQL+`, f.departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	res, err := r.db.Exec(ctx, `UPDATE flight SET flight_number=$1, route_id=$2, airplane_id=$3, departure_time=$4, arrival_time=$5, status=$6 WHERE id=$7`,
		flight.FlightNumber, flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime, flight.Status, flight.ID)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGFlightRepository) UpdateStatus(ctx context.Context, id int64, status domain.FlightStatus) (*domain.Flight, error) {
	res, err := r.db.Exec(ctx, `UPDATE flight SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return nil, pgxNoRows
	}
	return r.GetByID(ctx, id)
}

func (r *PGFlightRepository) SetCrewGroup(ctx context.Context, id int64, crewGroupID *int64) error {
	res, err := r.db.Exec(ctx, `UPDATE flight SET crew_group_id=$1 WHERE id=$2`, crewGroupID, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGFlightRepository) GetAirplaneForFlight(ctx context.Context, flightID int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT f.airplane_id, a.model_name, a.type_id, t.name
		FROM flight f
		LEFT JOIN airplane a ON a.id = f.airplane_id
		LEFT JOIN airplane_type t ON t.id = a.type_id
		WHERE f.id=$1`, flightID)

	var airplaneID, typeID *int64
	var modelName, typeName *string
	if err := row.Scan(&airplaneID, &modelName, &typeID, &typeName); err != nil {
		return nil, err
	}
	if airplaneID == nil {
		return nil, nil
	}
	return &domain.Airplane{ID: *airplaneID, ModelName: *modelName, TypeID: *typeID, TypeName: *typeName}, nil
}

func (r *PGFlightRepository) FindByCrewGroup(ctx context.Context, crewGroupID int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumnsSQL+` `+flightJoinSQL+` WHERE f.crew_group_id=$1`, crewGroupID)
	return scanFlight(row)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flight WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.RouteID, &f.AirplaneID, &f.CrewGroupID,
		&f.DepartureTime, &f.ArrivalTime, &f.Status, &f.SourceName, &f.DestinationName); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
