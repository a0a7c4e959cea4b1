package ground

import "errors"

var ErrInvalidAvailability = errors.New("invalid event ground availability")

type Availability string

const (
	AvailabilityAvailable   Availability = "Available"
	AvailabilityBooked      Availability = "Booked"
	AvailabilityMaintenance Availability = "Maintenance"
)

func NewAvailability(s string) (Availability, error) {
	switch Availability(s) {
	case AvailabilityAvailable, AvailabilityBooked, AvailabilityMaintenance:
		return Availability(s), nil
	default:
		return "", ErrInvalidAvailability
	}
}

func (a Availability) String() string {
	return string(a)
}
