package request

import (
	"eventease-admin/internal/domain/equipment"
	"eventease-admin/internal/usecase/command"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CreateEquipmentRequest struct {
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category" binding:"required"`
	Description       string          `json:"description"`
	QuantityAvailable int32           `json:"quantityAvailable" binding:"gte=0"`
	RentalPricePerDay decimal.Decimal `json:"rentalPricePerDay" binding:"required"`
	Condition         string          `json:"condition" binding:"required"`
}

func (r CreateEquipmentRequest) ToCommand() (command.CreateEquipment, error) {
	if _, err := equipment.NewCondition(r.Condition); err != nil {
		return command.CreateEquipment{}, err
	}
	var cmd command.CreateEquipment
	if err := copier.Copy(&cmd, &r); err != nil {
		return command.CreateEquipment{}, err
	}
	return cmd, nil
}

type PatchEquipmentRequest struct {
	Name              *string          `json:"name,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Description       *string          `json:"description,omitempty"`
	QuantityAvailable *int32           `json:"quantityAvailable,omitempty" binding:"omitempty,gte=0"`
	RentalPricePerDay *decimal.Decimal `json:"rentalPricePerDay,omitempty"`
	Condition         *string          `json:"condition,omitempty"`
}

func (r PatchEquipmentRequest) ToCommand() (command.PatchEquipment, error) {
	if r.Condition != nil {
		if _, err := equipment.NewCondition(*r.Condition); err != nil {
			return command.PatchEquipment{}, err
		}
	}
	var cmd command.PatchEquipment
	if err := copier.Copy(&cmd, &r); err != nil {
		return command.PatchEquipment{}, err
	}
	return cmd, nil
}
