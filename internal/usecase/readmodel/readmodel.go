// Package readmodel holds the read-side DTOs the repositories return. Missing
// nested records (a booking whose request never named a venue) are nullable
// fields here, not fallback literals in the view layer.
package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StaffRM struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
	CreatedAt time.Time
}

type OrganizerRM struct {
	ID               uuid.UUID
	FirstName        string
	LastName         string
	OrganizationName string
	Email            string
	Phone            string
	Address          string
	IsVerified       bool
	CreatedAt        time.Time
}

func (o OrganizerRM) FullName() string {
	return o.FirstName + " " + o.LastName
}

type VenueRM struct {
	ID          uuid.UUID
	Name        string
	Location    string
	Capacity    int32
	PricePerDay decimal.Decimal
	Amenities   []string
	Available   bool
	Description string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EquipmentRM struct {
	ID                uuid.UUID
	Name              string
	Category          string
	Description       string
	QuantityAvailable int32
	RentalPricePerDay decimal.Decimal
	Condition         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type EventGroundRM struct {
	ID           uuid.UUID
	Name         string
	Longitude    float64
	Latitude     float64
	Capacity     int32
	Availability string
	PricePerDay  decimal.Decimal
	Amenities    []string
	Images       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type VenueRequestRM struct {
	ID                 uuid.UUID
	OrganizerID        uuid.UUID
	OrganizerName      string
	EventName          string
	EventDescription   string
	EventDates         []time.Time
	ExpectedAttendance int32
	VenueID            *uuid.UUID
	VenueName          *string
	IsRead             bool
	Responded          bool
	RequestDate        time.Time
	AdditionalRequests *string
}

// QuotationRM is the staff-issued response to a venue request.
type QuotationRM struct {
	ID            uuid.UUID
	RequestID     uuid.UUID
	EventName     string
	OrganizerName string
	TotalAmount   decimal.Decimal
	DailyRates    []decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
}

type PaymentRM struct {
	Method        string
	Amount        decimal.Decimal
	TransactionID string
	PaidAt        time.Time
}

type BookingRM struct {
	ID                 uuid.UUID
	EventName          string
	OrganizerName      string
	VenueName          *string
	EventDates         []time.Time
	ExpectedAttendance int32
	TotalAmount        decimal.Decimal
	AmountPaid         decimal.Decimal
	Status             string
	Payments           []PaymentRM
	CreatedAt          time.Time
}

type EventRM struct {
	ID                 uuid.UUID
	EventName          string
	VenueName          *string
	EventDates         []time.Time
	ExpectedAttendance int32
	Status             string
}
