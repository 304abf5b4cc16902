package domain

import "time"

type Order struct {
	ID           int64     `json:"id"`
	Reference    string    `json:"reference"`
	UserID       int64     `json:"user_id"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`

	Tickets []Ticket `json:"tickets,omitempty"`
}

type Ticket struct {
	ID                 int64     `json:"id"`
	Row                int       `json:"row"`
	Seat               int       `json:"seat"`
	PassengerFirstName string    `json:"passenger_first_name"`
	PassengerLastName  string    `json:"passenger_last_name"`
	SeatClass          SeatClass `json:"seat_class"`
	FlightID           int64     `json:"flight_id"`
	OrderID            int64     `json:"order_id"`

	FlightNumber string `json:"flight_number,omitempty"`
}
