package response

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EquipmentResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	QuantityAvailable int32           `json:"quantityAvailable"`
	RentalPricePerDay decimal.Decimal `json:"rentalPricePerDay"`
	Condition         string          `json:"condition"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func FromEquipment(rm *readmodel.EquipmentRM) *EquipmentResponse {
	return &EquipmentResponse{
		ID:                rm.ID,
		Name:              rm.Name,
		Category:          rm.Category,
		Description:       rm.Description,
		QuantityAvailable: rm.QuantityAvailable,
		RentalPricePerDay: rm.RentalPricePerDay,
		Condition:         rm.Condition,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromEquipmentList(rms []*readmodel.EquipmentRM) []*EquipmentResponse {
	out := make([]*EquipmentResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromEquipment(rm))
	}
	return out
}
