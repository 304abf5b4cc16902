package domain

import "fmt"

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "EC"
	SeatClassBusiness SeatClass = "BC"
	SeatClassFirst    SeatClass = "FC"
)

var seatClassLabels = map[SeatClass]string{
	SeatClassEconomy:  "Economy Class",
	SeatClassBusiness: "Business Class",
	SeatClassFirst:    "First Class",
}

func (c SeatClass) Valid() bool {
	_, ok := seatClassLabels[c]
	return ok
}

func (c SeatClass) Label() string {
	return seatClassLabels[c]
}

// Rank is the canonical display order: Economy < Business < First.
func (c SeatClass) Rank() int {
	switch c {
	case SeatClassEconomy:
		return 0
	case SeatClassBusiness:
		return 1
	case SeatClassFirst:
		return 2
	}
	return 3
}

func ParseSeatClass(s string) (SeatClass, error) {
	c := SeatClass(s)
	if !c.Valid() {
		return "", &FormatError{Field: "seat_class", Value: s, Reason: fmt.Sprintf("must be one of %q, %q, %q", SeatClassEconomy, SeatClassBusiness, SeatClassFirst)}
	}
	return c, nil
}
