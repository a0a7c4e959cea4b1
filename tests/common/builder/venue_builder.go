//go:build unit || e2e

package builder

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VenueBuilder struct {
	Name        string
	Location    string
	Capacity    int32
	PricePerDay decimal.Decimal
	Available   bool
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		Name:        "Safari Park Gardens",
		Location:    "Nairobi",
		Capacity:    500,
		PricePerDay: decimal.NewFromInt(85000),
		Available:   true,
	}
}

func (b *VenueBuilder) WithName(name string) *VenueBuilder {
	b.Name = name
	return b
}

func (b *VenueBuilder) WithCapacity(capacity int32) *VenueBuilder {
	b.Capacity = capacity
	return b
}

func (b *VenueBuilder) AsUnavailable() *VenueBuilder {
	b.Available = false
	return b
}

func (b *VenueBuilder) BuildReadModel() *readmodel.VenueRM {
	now := time.Now()
	return &readmodel.VenueRM{
		ID:          uuid.New(),
		Name:        b.Name,
		Location:    b.Location,
		Capacity:    b.Capacity,
		PricePerDay: b.PricePerDay,
		Amenities:   []string{"Parking", "Catering"},
		Available:   b.Available,
		Description: "Outdoor garden venue",
		Images:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
