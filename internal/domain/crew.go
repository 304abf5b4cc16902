package domain

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CrewMember struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleID    int64  `json:"role_id"`

	RoleName string `json:"role_name,omitempty"`
}

// CrewGroup is the set of personnel assignable to one flight. It has no
// identity beyond its membership; a flight holds it by optional reference.
type CrewGroup struct {
	ID              int64        `json:"id"`
	Pilots          []CrewMember `json:"pilots"`
	Stewards        []CrewMember `json:"stewards"`
	Technicians     []CrewMember `json:"technicians"`
	AdditionalStaff []CrewMember `json:"additional_staff"`
}

// CrewGroupMembers carries the four role-scoped member-id sets used when
// creating or replacing a group's membership.
type CrewGroupMembers struct {
	PilotIDs           []int64 `json:"pilot_ids"`
	StewardIDs         []int64 `json:"steward_ids"`
	TechnicianIDs      []int64 `json:"technician_ids"`
	AdditionalStaffIDs []int64 `json:"additional_staff_ids"`
}
