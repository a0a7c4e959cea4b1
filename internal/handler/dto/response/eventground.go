package response

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventGroundResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Longitude    float64         `json:"longitude"`
	Latitude     float64         `json:"latitude"`
	Capacity     int32           `json:"capacity"`
	Availability string          `json:"availability"`
	PricePerDay  decimal.Decimal `json:"pricePerDay"`
	Amenities    []string        `json:"amenities"`
	Images       []string        `json:"images"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func FromEventGround(rm *readmodel.EventGroundRM) *EventGroundResponse {
	return &EventGroundResponse{
		ID:           rm.ID,
		Name:         rm.Name,
		Longitude:    rm.Longitude,
		Latitude:     rm.Latitude,
		Capacity:     rm.Capacity,
		Availability: rm.Availability,
		PricePerDay:  rm.PricePerDay,
		Amenities:    rm.Amenities,
		Images:       rm.Images,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromEventGrounds(rms []*readmodel.EventGroundRM) []*EventGroundResponse {
	out := make([]*EventGroundResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromEventGround(rm))
	}
	return out
}
