package request

import (
	"eventease-admin/internal/usecase/command"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CreateVenueRequest struct {
	Name        string          `json:"name" binding:"required"`
	Location    string          `json:"location" binding:"required"`
	Capacity    int32           `json:"capacity" binding:"required,gt=0"`
	PricePerDay decimal.Decimal `json:"pricePerDay" binding:"required"`
	Amenities   []string        `json:"amenities"`
	Available   bool            `json:"available"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
}

func (r CreateVenueRequest) ToCommand() (command.CreateVenue, error) {
	var cmd command.CreateVenue
	if err := copier.Copy(&cmd, &r); err != nil {
		return command.CreateVenue{}, err
	}
	return cmd, nil
}

// PatchVenueRequest uses pointers so absent fields stay untouched.
type PatchVenueRequest struct {
	Name        *string          `json:"name,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Capacity    *int32           `json:"capacity,omitempty" binding:"omitempty,gt=0"`
	PricePerDay *decimal.Decimal `json:"pricePerDay,omitempty"`
	Amenities   []string         `json:"amenities,omitempty"`
	Available   *bool            `json:"available,omitempty"`
	Description *string          `json:"description,omitempty"`
	Images      []string         `json:"images,omitempty"`
}

func (r PatchVenueRequest) ToCommand() (command.PatchVenue, error) {
	var cmd command.PatchVenue
	if err := copier.Copy(&cmd, &r); err != nil {
		return command.PatchVenue{}, err
	}
	return cmd, nil
}
