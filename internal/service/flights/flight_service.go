package flights

import (
	"context"
	"log"
	"time"

	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/repository"
)

type FlightUseCase interface {
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	// UpdateStatus applies an administrative status change; there are no
	// automatic transitions.
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Flight, error)
	// AssignCrewGroup sets the flight's crew group; nil clears the link.
	AssignCrewGroup(ctx context.Context, id int64, crewGroupID *int64) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

// Cache holds the flight listing between reads. A nil cache disables
// caching entirely.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightInput struct {
	FlightNumber  string    `json:"flight_number"`
	RouteID       int64     `json:"route_id"`
	AirplaneID    *int64    `json:"airplane_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Status        string    `json:"status"`
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	flight, err := flightFromInput(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, flight.ID)
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	flight, err := flightFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Flight, error) {
	parsed, err := domain.ParseFlightStatus(status)
	if err != nil {
		return nil, err
	}
	flight, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) AssignCrewGroup(ctx context.Context, id int64, crewGroupID *int64) (*domain.Flight, error) {
	if err := s.repo.SetCrewGroup(ctx, id, crewGroupID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("invalidate flights cache: %v", err)
	}
}

// Format and schedule checks run before the store is reached; flight number
// uniqueness is left to the store's constraint.
func flightFromInput(id int64, input FlightInput) (*domain.Flight, error) {
	if err := domain.ValidateFlightNumber(input.FlightNumber); err != nil {
		return nil, err
	}
	if err := domain.ValidateFlightTimes(input.DepartureTime, input.ArrivalTime); err != nil {
		return nil, err
	}

	status := domain.FlightStatusScheduled
	if input.Status != "" {
		parsed, err := domain.ParseFlightStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	return &domain.Flight{
		ID:            id,
		FlightNumber:  input.FlightNumber,
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Status:        status,
	}, nil
}

var _ FlightUseCase = (*FlightService)(nil)
