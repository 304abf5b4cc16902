package crew

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCrewMemberRepository struct {
	mock.Mock
}

func (m *MockCrewMemberRepository) Create(ctx context.Context, member *domain.CrewMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockCrewMemberRepository) GetByID(ctx context.Context, id int64) (*domain.CrewMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrewMember), args.Error(1)
}

func (m *MockCrewMemberRepository) List(ctx context.Context) ([]domain.CrewMember, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CrewMember), args.Error(1)
}

func (m *MockCrewMemberRepository) ListByRole(ctx context.Context, roleName string) ([]domain.CrewMember, error) {
	args := m.Called(ctx, roleName)
	return args.Get(0).([]domain.CrewMember), args.Error(1)
}

func (m *MockCrewMemberRepository) Update(ctx context.Context, member *domain.CrewMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockCrewMemberRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCrewGroupRepository struct {
	mock.Mock
}

func (m *MockCrewGroupRepository) Create(ctx context.Context, members domain.CrewGroupMembers) (*domain.CrewGroup, error) {
	args := m.Called(ctx, members)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrewGroup), args.Error(1)
}

func (m *MockCrewGroupRepository) GetByID(ctx context.Context, id int64) (*domain.CrewGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrewGroup), args.Error(1)
}

func (m *MockCrewGroupRepository) List(ctx context.Context) ([]domain.CrewGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CrewGroup), args.Error(1)
}

func (m *MockCrewGroupRepository) ReplaceMembers(ctx context.Context, id int64, members domain.CrewGroupMembers) (*domain.CrewGroup, error) {
	args := m.Called(ctx, id, members)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrewGroup), args.Error(1)
}

func (m *MockCrewGroupRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFlightFinder struct {
	mock.Mock
}

func (m *MockFlightFinder) FindByCrewGroup(ctx context.Context, crewGroupID int64) (*domain.Flight, error) {
	args := m.Called(ctx, crewGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestCrewService_FlightForGroup_Assigned(t *testing.T) {
	mockFlights := &MockFlightFinder{}
	service := NewCrewService(&MockRoleRepository{}, &MockCrewMemberRepository{}, &MockCrewGroupRepository{}, mockFlights)

	ctx := context.Background()
	assigned := &domain.Flight{ID: 5, FlightNumber: "AB123"}
	mockFlights.On("FindByCrewGroup", ctx, int64(9)).Return(assigned, nil).Once()

	flight, err := service.FlightForGroup(ctx, 9)

	require.NoError(t, err)
	assert.Equal(t, assigned, flight)
}

// An unassigned group is a normal outcome, not an error.
func TestCrewService_FlightForGroup_Unassigned(t *testing.T) {
	mockFlights := &MockFlightFinder{}
	service := NewCrewService(&MockRoleRepository{}, &MockCrewMemberRepository{}, &MockCrewGroupRepository{}, mockFlights)

	ctx := context.Background()
	mockFlights.On("FindByCrewGroup", ctx, int64(9)).Return(nil, pgx.ErrNoRows).Once()

	flight, err := service.FlightForGroup(ctx, 9)

	require.NoError(t, err)
	assert.Nil(t, flight)
}

func TestCrewService_FlightForGroup_StoreError(t *testing.T) {
	mockFlights := &MockFlightFinder{}
	service := NewCrewService(&MockRoleRepository{}, &MockCrewMemberRepository{}, &MockCrewGroupRepository{}, mockFlights)

	ctx := context.Background()
	storeErr := errors.New("connection refused")
	mockFlights.On("FindByCrewGroup", ctx, int64(9)).Return(nil, storeErr).Once()

	_, err := service.FlightForGroup(ctx, 9)

	assert.Equal(t, storeErr, err)
}

func TestCrewService_ListMembersByRole(t *testing.T) {
	mockMembers := &MockCrewMemberRepository{}
	service := NewCrewService(&MockRoleRepository{}, mockMembers, &MockCrewGroupRepository{}, &MockFlightFinder{})

	ctx := context.Background()
	pilots := []domain.CrewMember{{ID: 1, FirstName: "Ivan", RoleName: "pilot"}}
	mockMembers.On("ListByRole", ctx, "pilot").Return(pilots, nil).Once()

	members, err := service.ListMembersByRole(ctx, "pilot")

	require.NoError(t, err)
	assert.Equal(t, pilots, members)
	mockMembers.AssertExpectations(t)
}

func TestCrewService_CreateGroup(t *testing.T) {
	mockGroups := &MockCrewGroupRepository{}
	service := NewCrewService(&MockRoleRepository{}, &MockCrewMemberRepository{}, mockGroups, &MockFlightFinder{})

	ctx := context.Background()
	members := domain.CrewGroupMembers{PilotIDs: []int64{1, 2}, StewardIDs: []int64{3}}
	created := &domain.CrewGroup{ID: 4}
	mockGroups.On("Create", ctx, members).Return(created, nil).Once()

	group, err := service.CreateGroup(ctx, members)

	require.NoError(t, err)
	assert.Equal(t, created, group)
}
