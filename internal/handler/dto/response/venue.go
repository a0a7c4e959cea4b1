package response

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VenueResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Capacity    int32           `json:"capacity"`
	PricePerDay decimal.Decimal `json:"pricePerDay"`
	Amenities   []string        `json:"amenities"`
	Available   bool            `json:"available"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromVenue(rm *readmodel.VenueRM) *VenueResponse {
	return &VenueResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Location:    rm.Location,
		Capacity:    rm.Capacity,
		PricePerDay: rm.PricePerDay,
		Amenities:   rm.Amenities,
		Available:   rm.Available,
		Description: rm.Description,
		Images:      rm.Images,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromVenues(rms []*readmodel.VenueRM) []*VenueResponse {
	out := make([]*VenueResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromVenue(rm))
	}
	return out
}
