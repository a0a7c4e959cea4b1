package response

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId"`
	PaidAt        time.Time       `json:"paidAt"`
}

type BookingResponse struct {
	ID                 uuid.UUID         `json:"id"`
	EventName          string            `json:"eventName"`
	OrganizerName      string            `json:"organizerName"`
	VenueName          *string           `json:"venueName,omitempty"`
	EventDates         []time.Time       `json:"eventDates"`
	ExpectedAttendance int32             `json:"expectedAttendance"`
	TotalAmount        decimal.Decimal   `json:"totalAmount"`
	AmountPaid         decimal.Decimal   `json:"amountPaid"`
	Status             string            `json:"status"`
	Payments           []PaymentResponse `json:"payments"`
	CreatedAt          time.Time         `json:"createdAt"`
}

func FromBooking(rm *readmodel.BookingRM) *BookingResponse {
	payments := make([]PaymentResponse, 0, len(rm.Payments))
	for _, p := range rm.Payments {
		payments = append(payments, PaymentResponse{
			Method:        p.Method,
			Amount:        p.Amount,
			TransactionID: p.TransactionID,
			PaidAt:        p.PaidAt,
		})
	}
	return &BookingResponse{
		ID:                 rm.ID,
		EventName:          rm.EventName,
		OrganizerName:      rm.OrganizerName,
		VenueName:          rm.VenueName,
		EventDates:         rm.EventDates,
		ExpectedAttendance: rm.ExpectedAttendance,
		TotalAmount:        rm.TotalAmount,
		AmountPaid:         rm.AmountPaid,
		Status:             rm.Status,
		Payments:           payments,
		CreatedAt:          rm.CreatedAt,
	}
}

func FromBookings(rms []*readmodel.BookingRM) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBooking(rm))
	}
	return out
}
