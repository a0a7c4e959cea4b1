package request

import (
	"strings"

	"eventease-admin/internal/usecase/command"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateQuotationRequest struct {
	RequestID   uuid.UUID         `json:"requestId" binding:"required"`
	TotalAmount decimal.Decimal   `json:"totalAmount" binding:"required"`
	DailyRates  []decimal.Decimal `json:"dailyRates" binding:"required,min=1"`
	Notes       *string           `json:"notes,omitempty"`
}

func (r CreateQuotationRequest) ToCommand() command.CreateQuotation {
	notes := r.Notes
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if trimmed == "" {
			notes = nil
		} else {
			notes = &trimmed
		}
	}
	return command.CreateQuotation{
		RequestID:   r.RequestID,
		TotalAmount: r.TotalAmount,
		DailyRates:  r.DailyRates,
		Notes:       notes,
	}
}

type AcceptQuotationRequest struct {
	QuotationID uuid.UUID `json:"quotationId" binding:"required"`
}
