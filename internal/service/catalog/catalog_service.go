package catalog

import (
	"context"

	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/repository"
)

type CatalogUseCase interface {
	CreateCity(ctx context.Context, input CityInput) (*domain.City, error)
	GetCity(ctx context.Context, id int64) (*domain.City, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	UpdateCity(ctx context.Context, id int64, input CityInput) (*domain.City, error)
	DeleteCity(ctx context.Context, id int64) error

	CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	ListAirports(ctx context.Context, cityName string) ([]domain.Airport, error)
	UpdateAirport(ctx context.Context, id int64, input AirportInput) (*domain.Airport, error)
	DeleteAirport(ctx context.Context, id int64) error

	CreateRoute(ctx context.Context, input RouteInput) (*domain.Route, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	UpdateRoute(ctx context.Context, id int64, input RouteInput) (*domain.Route, error)
	DeleteRoute(ctx context.Context, id int64) error
}

type CityInput struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type AirportInput struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
	CityID   int64  `json:"city_id"`
}

type RouteInput struct {
	SourceID      int64 `json:"source_id"`
	DestinationID int64 `json:"destination_id"`
	Distance      int   `json:"distance"`
}

type CatalogService struct {
	cities   repository.CityRepository
	airports repository.AirportRepository
	routes   repository.RouteRepository
}

func NewCatalogService(cities repository.CityRepository, airports repository.AirportRepository, routes repository.RouteRepository) *CatalogService {
	return &CatalogService{cities: cities, airports: airports, routes: routes}
}

func (s *CatalogService) CreateCity(ctx context.Context, input CityInput) (*domain.City, error) {
	city := &domain.City{Name: input.Name, Country: input.Country}
	if err := s.cities.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CatalogService) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	return s.cities.GetByID(ctx, id)
}

func (s *CatalogService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.cities.List(ctx)
}

func (s *CatalogService) UpdateCity(ctx context.Context, id int64, input CityInput) (*domain.City, error) {
	city := &domain.City{ID: id, Name: input.Name, Country: input.Country}
	if err := s.cities.Update(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CatalogService) DeleteCity(ctx context.Context, id int64) error {
	return s.cities.Delete(ctx, id)
}

func (s *CatalogService) CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	if err := domain.ValidateIATACode(input.IATACode); err != nil {
		return nil, err
	}
	airport := &domain.Airport{Name: input.Name, IATACode: input.IATACode, CityID: input.CityID}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, err
	}
	return s.airports.GetByID(ctx, airport.ID)
}

func (s *CatalogService) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *CatalogService) ListAirports(ctx context.Context, cityName string) ([]domain.Airport, error) {
	return s.airports.List(ctx, cityName)
}

func (s *CatalogService) UpdateAirport(ctx context.Context, id int64, input AirportInput) (*domain.Airport, error) {
	if err := domain.ValidateIATACode(input.IATACode); err != nil {
		return nil, err
	}
	airport := &domain.Airport{ID: id, Name: input.Name, IATACode: input.IATACode, CityID: input.CityID}
	if err := s.airports.Update(ctx, airport); err != nil {
		return nil, err
	}
	return s.airports.GetByID(ctx, id)
}

func (s *CatalogService) DeleteAirport(ctx context.Context, id int64) error {
	return s.airports.Delete(ctx, id)
}

func (s *CatalogService) CreateRoute(ctx context.Context, input RouteInput) (*domain.Route, error) {
	if err := validateRouteInput(input); err != nil {
		return nil, err
	}
	route := &domain.Route{SourceID: input.SourceID, DestinationID: input.DestinationID, Distance: input.Distance}
	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}
	return s.routes.GetByID(ctx, route.ID)
}

func (s *CatalogService) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *CatalogService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.routes.List(ctx)
}

func (s *CatalogService) UpdateRoute(ctx context.Context, id int64, input RouteInput) (*domain.Route, error) {
	if err := validateRouteInput(input); err != nil {
		return nil, err
	}
	route := &domain.Route{ID: id, SourceID: input.SourceID, DestinationID: input.DestinationID, Distance: input.Distance}
	if err := s.routes.Update(ctx, route); err != nil {
		return nil, err
	}
	return s.routes.GetByID(ctx, id)
}

func (s *CatalogService) DeleteRoute(ctx context.Context, id int64) error {
	return s.routes.Delete(ctx, id)
}

// A self-loop is rejected here, before the store is reached. The
// (source, destination) pair uniqueness is left to the store's constraint.
func validateRouteInput(input RouteInput) error {
	if err := domain.ValidateRoute(input.SourceID, input.DestinationID); err != nil {
		return err
	}
	if input.Distance < 1 {
		return &domain.RangeError{Field: "distance", Min: 1, Value: input.Distance}
	}
	return nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
