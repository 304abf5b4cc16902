package orders

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/kafka"
	"github.com/pvoloshyn/airdesk/internal/repository"
)

type OrderUseCase interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateOrderInput struct {
	UserID       int64         `json:"user_id"`
	ContactEmail string        `json:"contact_email"`
	Tickets      []TicketInput `json:"tickets"`
}

type TicketInput struct {
	FlightID           int64  `json:"flight_id"`
	SeatClass          string `json:"seat_class"`
	Row                int    `json:"row"`
	Seat               int    `json:"seat"`
	PassengerFirstName string `json:"passenger_first_name"`
	PassengerLastName  string `json:"passenger_last_name"`
}

type OrderService struct {
	orders             repository.OrderRepository
	flights            repository.FlightRepository
	seats              repository.SeatConfigurationRepository
	producer           Producer
	ordersTopic        string
	notificationsTopic string
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func NewOrderService(
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	seats repository.SeatConfigurationRepository,
	producer Producer,
	ordersTopic string,
	opts ...OrderServiceOption,
) *OrderService {
	service := &OrderService{
		orders:      orders,
		flights:     flights,
		seats:       seats,
		producer:    producer,
		ordersTopic: ordersTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create validates every ticket against its flight's seat layout, then
// commits the order and tickets in one store transaction. The store's
// (flight, seat_class, seat) constraint is the authoritative guard against
// double-booking; a conflict surfaces as domain.ConstraintViolation and is
// not retried.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Tickets) == 0 {
		return nil, errors.New("order must contain at least one ticket")
	}
	if input.ContactEmail == "" {
		return nil, errors.New("contact email is required")
	}

	tickets := make([]domain.Ticket, 0, len(input.Tickets))
	seatConfigs := make(map[int64][]domain.SeatConfiguration)
	for _, t := range input.Tickets {
		class, err := domain.ParseSeatClass(t.SeatClass)
		if err != nil {
			return nil, err
		}

		airplane, err := s.flights.GetAirplaneForFlight(ctx, t.FlightID)
		if err != nil {
			return nil, err
		}

		var configs []domain.SeatConfiguration
		if airplane != nil {
			cached, ok := seatConfigs[airplane.ID]
			if !ok {
				cached, err = s.seats.ListByAirplane(ctx, airplane.ID)
				if err != nil {
					return nil, err
				}
				seatConfigs[airplane.ID] = cached
			}
			configs = cached
		}

		if err := domain.ValidateTicket(t.FlightID, airplane, configs, class, t.Row, t.Seat); err != nil {
			return nil, err
		}

		tickets = append(tickets, domain.Ticket{
			Row:                t.Row,
			Seat:               t.Seat,
			PassengerFirstName: t.PassengerFirstName,
			PassengerLastName:  t.PassengerLastName,
			SeatClass:          class,
			FlightID:           t.FlightID,
		})
	}

	order := &domain.Order{
		Reference:    uuid.NewString(),
		UserID:       input.UserID,
		ContactEmail: input.ContactEmail,
	}
	if err := s.orders.CreateWithTickets(ctx, order, tickets); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "order_created", order); err != nil {
		log.Printf("WARNING: failed to publish order_created event for order %s: %v", order.Reference, err)
	}
	return order, nil
}

func (s *OrderService) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	return s.orders.GetByReference(ctx, reference)
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) error {
	if s.producer == nil || s.ordersTopic == "" {
		return nil
	}

	items := make([]kafka.TicketEventItem, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		items = append(items, kafka.TicketEventItem{
			FlightID:     t.FlightID,
			FlightNumber: t.FlightNumber,
			SeatClass:    string(t.SeatClass),
			Row:          t.Row,
			Seat:         t.Seat,
			Passenger:    t.PassengerFirstName + " " + t.PassengerLastName,
		})
	}
	event := kafka.OrderEvent{
		Type:         eventType,
		Reference:    order.Reference,
		UserID:       order.UserID,
		ContactEmail: order.ContactEmail,
		CreatedAt:    order.CreatedAt,
		Tickets:      items,
	}

	if err := s.producer.Publish(ctx, s.ordersTopic, order.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, order.Reference, event)
	}
	return nil
}

var _ OrderUseCase = (*OrderService)(nil)
