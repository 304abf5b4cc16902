package fleet

import (
	"context"
	"testing"

	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAirplaneTypeRepository struct {
	mock.Mock
}

func (m *MockAirplaneTypeRepository) Create(ctx context.Context, at *domain.AirplaneType) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) Update(ctx context.Context, at *domain.AirplaneType) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSeatConfigurationRepository struct {
	mock.Mock
}

func (m *MockSeatConfigurationRepository) Create(ctx context.Context, config *domain.SeatConfiguration) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockSeatConfigurationRepository) GetByID(ctx context.Context, id int64) (*domain.SeatConfiguration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatConfiguration), args.Error(1)
}

func (m *MockSeatConfigurationRepository) List(ctx context.Context) ([]domain.SeatConfiguration, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SeatConfiguration), args.Error(1)
}

func (m *MockSeatConfigurationRepository) ListByAirplane(ctx context.Context, airplaneID int64) ([]domain.SeatConfiguration, error) {
	args := m.Called(ctx, airplaneID)
	return args.Get(0).([]domain.SeatConfiguration), args.Error(1)
}

func (m *MockSeatConfigurationRepository) Update(ctx context.Context, config *domain.SeatConfiguration) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockSeatConfigurationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestFleetService() (*FleetService, *MockAirplaneTypeRepository, *MockAirplaneRepository, *MockSeatConfigurationRepository) {
	types := &MockAirplaneTypeRepository{}
	airplanes := &MockAirplaneRepository{}
	seats := &MockSeatConfigurationRepository{}
	return NewFleetService(types, airplanes, seats), types, airplanes, seats
}

func TestFleetService_CreateSeatConfiguration_Success(t *testing.T) {
	service, _, _, seats := newTestFleetService()
	ctx := context.Background()

	stored := &domain.SeatConfiguration{ID: 1, SeatClass: domain.SeatClassBusiness, Rows: 4, SeatsInRow: 4, AirplaneID: 3}
	seats.On("Create", ctx, mock.AnythingOfType("*domain.SeatConfiguration")).Return(nil).Once()
	seats.On("GetByID", ctx, mock.Anything).Return(stored, nil).Once()

	config, err := service.CreateSeatConfiguration(ctx, SeatConfigurationInput{
		SeatClass: "BC", Rows: 4, SeatsInRow: 4, AirplaneID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, stored, config)
	assert.Equal(t, 16, config.Capacity())
	seats.AssertExpectations(t)
}

func TestFleetService_CreateSeatConfiguration_BadClass(t *testing.T) {
	service, _, _, seats := newTestFleetService()

	_, err := service.CreateSeatConfiguration(context.Background(), SeatConfigurationInput{
		SeatClass: "Premium", Rows: 4, SeatsInRow: 4, AirplaneID: 3,
	})

	var fe *domain.FormatError
	require.Error(t, err)
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "seat_class", fe.Field)
	seats.AssertNotCalled(t, "Create")
}

func TestFleetService_CreateSeatConfiguration_BadLayout(t *testing.T) {
	service, _, _, seats := newTestFleetService()
	ctx := context.Background()

	_, err := service.CreateSeatConfiguration(ctx, SeatConfigurationInput{
		SeatClass: "EC", Rows: 0, SeatsInRow: 6, AirplaneID: 3,
	})
	var re *domain.RangeError
	require.Error(t, err)
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, "rows", re.Field)

	_, err = service.CreateSeatConfiguration(ctx, SeatConfigurationInput{
		SeatClass: "EC", Rows: 6, SeatsInRow: -1, AirplaneID: 3,
	})
	require.Error(t, err)
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, "seats_in_row", re.Field)

	seats.AssertNotCalled(t, "Create")
}

func TestFleetService_CreateAirplane(t *testing.T) {
	service, _, airplanes, _ := newTestFleetService()
	ctx := context.Background()

	stored := &domain.Airplane{ID: 1, ModelName: "A320neo", TypeID: 2, TypeName: "Narrow-body"}
	airplanes.On("Create", ctx, mock.AnythingOfType("*domain.Airplane")).Return(nil).Once()
	airplanes.On("GetByID", ctx, mock.Anything).Return(stored, nil).Once()

	airplane, err := service.CreateAirplane(ctx, AirplaneInput{ModelName: "A320neo", TypeID: 2})

	require.NoError(t, err)
	assert.Equal(t, stored, airplane)
	airplanes.AssertExpectations(t)
}

func TestFleetService_ListSeatConfigurationsByAirplane(t *testing.T) {
	service, _, _, seats := newTestFleetService()
	ctx := context.Background()

	configs := []domain.SeatConfiguration{
		{ID: 1, SeatClass: domain.SeatClassEconomy, Rows: 20, SeatsInRow: 6, AirplaneID: 3},
		{ID: 2, SeatClass: domain.SeatClassBusiness, Rows: 4, SeatsInRow: 4, AirplaneID: 3},
	}
	seats.On("ListByAirplane", ctx, int64(3)).Return(configs, nil).Once()

	got, err := service.ListSeatConfigurationsByAirplane(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, configs, got)
}
