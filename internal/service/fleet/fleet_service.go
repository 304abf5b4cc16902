package fleet

import (
	"context"

	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/repository"
)

type FleetUseCase interface {
	CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	UpdateAirplaneType(ctx context.Context, id int64, name string) (*domain.AirplaneType, error)
	DeleteAirplaneType(ctx context.Context, id int64) error

	CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	UpdateAirplane(ctx context.Context, id int64, input AirplaneInput) (*domain.Airplane, error)
	DeleteAirplane(ctx context.Context, id int64) error

	CreateSeatConfiguration(ctx context.Context, input SeatConfigurationInput) (*domain.SeatConfiguration, error)
	GetSeatConfiguration(ctx context.Context, id int64) (*domain.SeatConfiguration, error)
	ListSeatConfigurations(ctx context.Context) ([]domain.SeatConfiguration, error)
	ListSeatConfigurationsByAirplane(ctx context.Context, airplaneID int64) ([]domain.SeatConfiguration, error)
	UpdateSeatConfiguration(ctx context.Context, id int64, input SeatConfigurationInput) (*domain.SeatConfiguration, error)
	DeleteSeatConfiguration(ctx context.Context, id int64) error
}

type AirplaneInput struct {
	ModelName string `json:"model_name"`
	TypeID    int64  `json:"type_id"`
}

type SeatConfigurationInput struct {
	SeatClass  string `json:"seat_class"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	AirplaneID int64  `json:"airplane_id"`
}

type FleetService struct {
	types     repository.AirplaneTypeRepository
	airplanes repository.AirplaneRepository
	seats     repository.SeatConfigurationRepository
}

func NewFleetService(types repository.AirplaneTypeRepository, airplanes repository.AirplaneRepository, seats repository.SeatConfigurationRepository) *FleetService {
	return &FleetService{types: types, airplanes: airplanes, seats: seats}
}

func (s *FleetService) CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error) {
	at := &domain.AirplaneType{Name: name}
	if err := s.types.Create(ctx, at); err != nil {
		return nil, err
	}
	return at, nil
}

func (s *FleetService) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *FleetService) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.types.List(ctx)
}

func (s *FleetService) UpdateAirplaneType(ctx context.Context, id int64, name string) (*domain.AirplaneType, error) {
	at := &domain.AirplaneType{ID: id, Name: name}
	if err := s.types.Update(ctx, at); err != nil {
		return nil, err
	}
	return at, nil
}

func (s *FleetService) DeleteAirplaneType(ctx context.Context, id int64) error {
	return s.types.Delete(ctx, id)
}

func (s *FleetService) CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error) {
	airplane := &domain.Airplane{ModelName: input.ModelName, TypeID: input.TypeID}
	if err := s.airplanes.Create(ctx, airplane); err != nil {
		return nil, err
	}
	return s.airplanes.GetByID(ctx, airplane.ID)
}

func (s *FleetService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *FleetService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx)
}

func (s *FleetService) UpdateAirplane(ctx context.Context, id int64, input AirplaneInput) (*domain.Airplane, error) {
	airplane := &domain.Airplane{ID: id, ModelName: input.ModelName, TypeID: input.TypeID}
	if err := s.airplanes.Update(ctx, airplane); err != nil {
		return nil, err
	}
	return s.airplanes.GetByID(ctx, id)
}

func (s *FleetService) DeleteAirplane(ctx context.Context, id int64) error {
	return s.airplanes.Delete(ctx, id)
}

func (s *FleetService) CreateSeatConfiguration(ctx context.Context, input SeatConfigurationInput) (*domain.SeatConfiguration, error) {
	class, err := validateSeatConfigurationInput(input)
	if err != nil {
		return nil, err
	}
	config := &domain.SeatConfiguration{SeatClass: class, Rows: input.Rows, SeatsInRow: input.SeatsInRow, AirplaneID: input.AirplaneID}
	if err := s.seats.Create(ctx, config); err != nil {
		return nil, err
	}
	return s.seats.GetByID(ctx, config.ID)
}

func (s *FleetService) GetSeatConfiguration(ctx context.Context, id int64) (*domain.SeatConfiguration, error) {
	return s.seats.GetByID(ctx, id)
}

func (s *FleetService) ListSeatConfigurations(ctx context.Context) ([]domain.SeatConfiguration, error) {
	return s.seats.List(ctx)
}

func (s *FleetService) ListSeatConfigurationsByAirplane(ctx context.Context, airplaneID int64) ([]domain.SeatConfiguration, error) {
	return s.seats.ListByAirplane(ctx, airplaneID)
}

func (s *FleetService) UpdateSeatConfiguration(ctx context.Context, id int64, input SeatConfigurationInput) (*domain.SeatConfiguration, error) {
	class, err := validateSeatConfigurationInput(input)
	if err != nil {
		return nil, err
	}
	config := &domain.SeatConfiguration{ID: id, SeatClass: class, Rows: input.Rows, SeatsInRow: input.SeatsInRow, AirplaneID: input.AirplaneID}
	if err := s.seats.Update(ctx, config); err != nil {
		return nil, err
	}
	return s.seats.GetByID(ctx, id)
}

func (s *FleetService) DeleteSeatConfiguration(ctx context.Context, id int64) error {
	return s.seats.Delete(ctx, id)
}

func validateSeatConfigurationInput(input SeatConfigurationInput) (domain.SeatClass, error) {
	class, err := domain.ParseSeatClass(input.SeatClass)
	if err != nil {
		return "", err
	}
	if input.Rows < 1 {
		return "", &domain.RangeError{Field: "rows", Min: 1, Value: input.Rows}
	}
	if input.SeatsInRow < 1 {
		return "", &domain.RangeError{Field: "seats_in_row", Min: 1, Value: input.SeatsInRow}
	}
	return class, nil
}

var _ FleetUseCase = (*FleetService)(nil)
