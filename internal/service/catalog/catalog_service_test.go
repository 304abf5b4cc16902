package catalog

import (
	"context"
	"testing"

	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) Create(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) List(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockCityRepository) Update(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) List(ctx context.Context, cityName string) ([]domain.Airport, error) {
	args := m.Called(ctx, cityName)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestCatalogService() (*CatalogService, *MockCityRepository, *MockAirportRepository, *MockRouteRepository) {
	cities := &MockCityRepository{}
	airports := &MockAirportRepository{}
	routes := &MockRouteRepository{}
	return NewCatalogService(cities, airports, routes), cities, airports, routes
}

func TestCatalogService_CreateCity(t *testing.T) {
	service, cities, _, _ := newTestCatalogService()
	ctx := context.Background()

	cities.On("Create", ctx, mock.AnythingOfType("*domain.City")).Return(nil).Once()

	city, err := service.CreateCity(ctx, CityInput{Name: "Oslo", Country: "Norway"})

	require.NoError(t, err)
	assert.Equal(t, "Oslo", city.Name)
	assert.Equal(t, "Norway", city.Country)
	cities.AssertExpectations(t)
}

func TestCatalogService_CreateAirport_BadIATACode(t *testing.T) {
	service, _, airports, _ := newTestCatalogService()
	ctx := context.Background()

	_, err := service.CreateAirport(ctx, AirportInput{Name: "Gardermoen", IATACode: "oslo", CityID: 1})

	var fe *domain.FormatError
	require.Error(t, err)
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "iata_code", fe.Field)
	airports.AssertNotCalled(t, "Create")
}

func TestCatalogService_CreateAirport_Success(t *testing.T) {
	service, _, airports, _ := newTestCatalogService()
	ctx := context.Background()

	stored := &domain.Airport{ID: 1, Name: "Gardermoen", IATACode: "OSL", CityID: 1, CityName: "Oslo"}
	airports.On("Create", ctx, mock.AnythingOfType("*domain.Airport")).Return(nil).Once()
	airports.On("GetByID", ctx, mock.Anything).Return(stored, nil).Once()

	airport, err := service.CreateAirport(ctx, AirportInput{Name: "Gardermoen", IATACode: "OSL", CityID: 1})

	require.NoError(t, err)
	assert.Equal(t, stored, airport)
	airports.AssertExpectations(t)
}

func TestCatalogService_CreateRoute_SelfLoop(t *testing.T) {
	service, _, _, routes := newTestCatalogService()
	ctx := context.Background()

	_, err := service.CreateRoute(ctx, RouteInput{SourceID: 3, DestinationID: 3, Distance: 100})

	var ir *domain.InvalidRouteError
	require.Error(t, err)
	assert.ErrorAs(t, err, &ir)
	routes.AssertNotCalled(t, "Create")
}

func TestCatalogService_CreateRoute_BadDistance(t *testing.T) {
	service, _, _, routes := newTestCatalogService()
	ctx := context.Background()

	_, err := service.CreateRoute(ctx, RouteInput{SourceID: 1, DestinationID: 2, Distance: 0})

	var re *domain.RangeError
	require.Error(t, err)
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, "distance", re.Field)
	routes.AssertNotCalled(t, "Create")
}

func TestCatalogService_CreateRoute_Success(t *testing.T) {
	service, _, _, routes := newTestCatalogService()
	ctx := context.Background()

	stored := &domain.Route{ID: 1, SourceID: 1, DestinationID: 2, Distance: 417}
	routes.On("Create", ctx, mock.AnythingOfType("*domain.Route")).Return(nil).Once()
	routes.On("GetByID", ctx, mock.Anything).Return(stored, nil).Once()

	route, err := service.CreateRoute(ctx, RouteInput{SourceID: 1, DestinationID: 2, Distance: 417})

	require.NoError(t, err)
	assert.Equal(t, stored, route)
	routes.AssertExpectations(t)
}

func TestCatalogService_UpdateRoute_SelfLoop(t *testing.T) {
	service, _, _, routes := newTestCatalogService()

	_, err := service.UpdateRoute(context.Background(), 1, RouteInput{SourceID: 5, DestinationID: 5, Distance: 200})

	assert.Error(t, err)
	routes.AssertNotCalled(t, "Update")
}
