package crew

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/pvoloshyn/airdesk/internal/repository"
)

type CrewUseCase interface {
	CreateRole(ctx context.Context, name string) (*domain.Role, error)
	GetRole(ctx context.Context, id int64) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	UpdateRole(ctx context.Context, id int64, name string) (*domain.Role, error)
	DeleteRole(ctx context.Context, id int64) error

	CreateMember(ctx context.Context, input MemberInput) (*domain.CrewMember, error)
	GetMember(ctx context.Context, id int64) (*domain.CrewMember, error)
	ListMembers(ctx context.Context) ([]domain.CrewMember, error)
	// ListMembersByRole resolves role-scoped member pickers with one typed
	// query instead of reflecting over field names.
	ListMembersByRole(ctx context.Context, roleName string) ([]domain.CrewMember, error)
	UpdateMember(ctx context.Context, id int64, input MemberInput) (*domain.CrewMember, error)
	DeleteMember(ctx context.Context, id int64) error

	CreateGroup(ctx context.Context, members domain.CrewGroupMembers) (*domain.CrewGroup, error)
	GetGroup(ctx context.Context, id int64) (*domain.CrewGroup, error)
	ListGroups(ctx context.Context) ([]domain.CrewGroup, error)
	ReplaceGroupMembers(ctx context.Context, id int64, members domain.CrewGroupMembers) (*domain.CrewGroup, error)
	DeleteGroup(ctx context.Context, id int64) error
	// FlightForGroup returns the flight a crew group is assigned to, or
	// nil when unassigned.
	FlightForGroup(ctx context.Context, id int64) (*domain.Flight, error)
}

type MemberInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleID    int64  `json:"role_id"`
}

// FlightFinder is the slice of the flight store the crew area needs.
type FlightFinder interface {
	FindByCrewGroup(ctx context.Context, crewGroupID int64) (*domain.Flight, error)
}

type CrewService struct {
	roles   repository.RoleRepository
	members repository.CrewMemberRepository
	groups  repository.CrewGroupRepository
	flights FlightFinder
}

func NewCrewService(roles repository.RoleRepository, members repository.CrewMemberRepository, groups repository.CrewGroupRepository, flights FlightFinder) *CrewService {
	return &CrewService{roles: roles, members: members, groups: groups, flights: flights}
}

func (s *CrewService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	role := &domain.Role{Name: name}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *CrewService) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roles.GetByID(ctx, id)
}

func (s *CrewService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *CrewService) UpdateRole(ctx context.Context, id int64, name string) (*domain.Role, error) {
	role := &domain.Role{ID: id, Name: name}
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *CrewService) DeleteRole(ctx context.Context, id int64) error {
	return s.roles.Delete(ctx, id)
}

func (s *CrewService) CreateMember(ctx context.Context, input MemberInput) (*domain.CrewMember, error) {
	member := &domain.CrewMember{FirstName: input.FirstName, LastName: input.LastName, RoleID: input.RoleID}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return s.members.GetByID(ctx, member.ID)
}

func (s *CrewService) GetMember(ctx context.Context, id int64) (*domain.CrewMember, error) {
	return s.members.GetByID(ctx, id)
}

func (s *CrewService) ListMembers(ctx context.Context) ([]domain.CrewMember, error) {
	return s.members.List(ctx)
}

func (s *CrewService) ListMembersByRole(ctx context.Context, roleName string) ([]domain.CrewMember, error) {
	return s.members.ListByRole(ctx, roleName)
}

func (s *CrewService) UpdateMember(ctx context.Context, id int64, input MemberInput) (*domain.CrewMember, error) {
	member := &domain.CrewMember{ID: id, FirstName: input.FirstName, LastName: input.LastName, RoleID: input.RoleID}
	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return s.members.GetByID(ctx, id)
}

func (s *CrewService) DeleteMember(ctx context.Context, id int64) error {
	return s.members.Delete(ctx, id)
}

func (s *CrewService) CreateGroup(ctx context.Context, members domain.CrewGroupMembers) (*domain.CrewGroup, error) {
	return s.groups.Create(ctx, members)
}

func (s *CrewService) GetGroup(ctx context.Context, id int64) (*domain.CrewGroup, error) {
	return s.groups.GetByID(ctx, id)
}

func (s *CrewService) ListGroups(ctx context.Context) ([]domain.CrewGroup, error) {
	return s.groups.List(ctx)
}

func (s *CrewService) ReplaceGroupMembers(ctx context.Context, id int64, members domain.CrewGroupMembers) (*domain.CrewGroup, error) {
	return s.groups.ReplaceMembers(ctx, id, members)
}

func (s *CrewService) DeleteGroup(ctx context.Context, id int64) error {
	return s.groups.Delete(ctx, id)
}

func (s *CrewService) FlightForGroup(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.flights.FindByCrewGroup(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return flight, nil
}

var _ CrewUseCase = (*CrewService)(nil)
