package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

type OrderRepository interface {
	// CreateWithTickets inserts the order and all its tickets in one
	// transaction. The (flight, seat_class, seat) unique constraint is the
	// authoritative guard against double-booking; a conflict rolls the
	// whole order back and surfaces as domain.ConstraintViolation.
	CreateWithTickets(ctx context.Context, order *domain.Order, tickets []domain.Ticket) error
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	// ListByUser returns the user's orders, most recent first, tickets
	// ordered by seat.
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) CreateWithTickets(ctx context.Context, order *domain.Order, tickets []domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO orders (reference, user_id, contact_email)
		VALUES ($1, $2, $3) RETURNING id, created_at`,
		order.Reference, order.UserID, order.ContactEmail).Scan(&order.ID, &order.CreatedAt); err != nil {
		return wrapPgError(err)
	}

	order.Tickets = make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		t.OrderID = order.ID
		if err := tx.QueryRow(ctx, `INSERT INTO ticket (row, seat, passenger_first_name, passenger_last_name, seat_class, flight_id, order_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			t.Row, t.Seat, t.PassengerFirstName, t.PassengerLastName, t.SeatClass, t.FlightID, t.OrderID).Scan(&t.ID); err != nil {
			return wrapPgError(err)
		}
		order.Tickets = append(order.Tickets, t)
	}

	return tx.Commit(ctx)
}

func (r *PGOrderRepository) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT id, reference, user_id, contact_email, created_at FROM orders WHERE reference=$1`, reference)
	var o domain.Order
	if err := row.Scan(&o.ID, &o.Reference, &o.UserID, &o.ContactEmail, &o.CreatedAt); err != nil {
		return nil, err
	}
	tickets, err := r.ticketsForOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Tickets = tickets
	return &o, nil
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, reference, user_id, contact_email, created_at
		FROM orders WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.UserID, &o.ContactEmail, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		tickets, err := r.ticketsForOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Tickets = tickets
	}
	return orders, nil
}

func (r *PGOrderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return wrapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return pgxNoRows
	}
	return nil
}

func (r *PGOrderRepository) ticketsForOrder(ctx context.Context, orderID int64) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT t.id, t.row, t.seat, t.passenger_first_name, t.passenger_last_name, t.seat_class, t.flight_id, t.order_id, f.flight_number
		FROM ticket t JOIN flight f ON f.id = t.flight_id
		WHERE t.order_id=$1 ORDER BY t.seat`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.PassengerFirstName, &t.PassengerLastName, &t.SeatClass, &t.FlightID, &t.OrderID, &t.FlightNumber); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
