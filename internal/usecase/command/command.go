// Package command holds the write-side parameter structs shared between the
// usecases that accept them and the repositories that persist them. Patch
// structs use pointer fields: nil means "leave unchanged".
package command

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateVenue struct {
	Name        string
	Location    string
	Capacity    int32
	PricePerDay decimal.Decimal
	Amenities   []string
	Available   bool
	Description string
	Images      []string
}

type PatchVenue struct {
	Name        *string
	Location    *string
	Capacity    *int32
	PricePerDay *decimal.Decimal
	Amenities   []string
	Available   *bool
	Description *string
	Images      []string
}

type CreateEquipment struct {
	Name              string
	Category          string
	Description       string
	QuantityAvailable int32
	RentalPricePerDay decimal.Decimal
	Condition         string
}

type PatchEquipment struct {
	Name              *string
	Category          *string
	Description       *string
	QuantityAvailable *int32
	RentalPricePerDay *decimal.Decimal
	Condition         *string
}

type CreateEventGround struct {
	Name         string
	Longitude    float64
	Latitude     float64
	Capacity     int32
	Availability string
	PricePerDay  decimal.Decimal
	Amenities    []string
	Images       []string
}

type PatchEventGround struct {
	Name         *string
	Longitude    *float64
	Latitude     *float64
	Capacity     *int32
	Availability *string
	PricePerDay  *decimal.Decimal
	Amenities    []string
	Images       []string
}

type CreateQuotation struct {
	RequestID   uuid.UUID
	TotalAmount decimal.Decimal
	DailyRates  []decimal.Decimal
	Notes       *string
}

// AcceptQuotation records an organizer's acceptance of a quotation and yields
// a tentative booking carrying the quoted amounts.
type AcceptQuotation struct {
	QuotationID uuid.UUID
	AcceptedAt  time.Time
}
