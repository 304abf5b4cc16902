package domain

type AirplaneType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Airplane struct {
	ID        int64  `json:"id"`
	ModelName string `json:"model_name"`
	TypeID    int64  `json:"type_id"`

	TypeName string `json:"type_name,omitempty"`
}

// SeatConfiguration describes the seat layout of one class on one airplane.
type SeatConfiguration struct {
	ID         int64     `json:"id"`
	SeatClass  SeatClass `json:"seat_class"`
	Rows       int       `json:"rows"`
	SeatsInRow int       `json:"seats_in_row"`
	AirplaneID int64     `json:"airplane_id"`

	AirplaneModelName string `json:"airplane_model_name,omitempty"`
}

// Capacity is the number of seats in this class.
func (c SeatConfiguration) Capacity() int {
	return c.Rows * c.SeatsInRow
}
