package request

import (
	"eventease-admin/internal/domain/ground"
	"eventease-admin/internal/usecase/command"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CreateEventGroundRequest struct {
	Name         string          `json:"name" binding:"required"`
	Longitude    float64         `json:"longitude" binding:"required"`
	Latitude     float64         `json:"latitude" binding:"required"`
	Capacity     int32           `json:"capacity" binding:"required,gt=0"`
	Availability string          `json:"availability" binding:"required"`
	PricePerDay  decimal.Decimal `json:"pricePerDay" binding:"required"`
	Amenities    []string        `json:"amenities"`
	Images       []string        `json:"images"`
}

func (r CreateEventGroundRequest) ToCommand() (command.CreateEventGround, error) {
	if _, err := ground.NewAvailability(r.Availability); err != nil {
		return command.CreateEventGround{}, err
	}
	var cmd command.CreateEventGround
	if err := copier.Copy(&cmd, &r); err != nil {
		return command.CreateEventGround{}, err
	}
	return cmd, nil
}

type PatchEventGroundRequest struct {
	Name         *string          `json:"name,omitempty"`
	Longitude    *float64         `json:"longitude,omitempty"`
	Latitude     *float64         `json:"latitude,omitempty"`
	Capacity     *int32           `json:"capacity,omitempty" binding:"omitempty,gt=0"`
	Availability *string          `json:"availability,omitempty"`
	PricePerDay  *decimal.Decimal `json:"pricePerDay,omitempty"`
	Amenities    []string         `json:"amenities,omitempty"`
	Images       []string         `json:"images,omitempty"`
}

func (r PatchEventGroundRequest) ToCommand() (command.PatchEventGround, error) {
	if r.Availability != nil {
		if _, err := ground.NewAvailability(*r.Availability); err != nil {
			return command.PatchEventGround{}, err
		}
	}
	var cmd command.PatchEventGround
	if err := copier.Copy(&cmd, &r); err != nil {
		return command.PatchEventGround{}, err
	}
	return cmd, nil
}
