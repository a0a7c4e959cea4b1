//go:build unit || e2e

package builder

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	EventName     string
	OrganizerName string
	VenueName     *string
	EventDates    []time.Time
	Status        string
	TotalAmount   decimal.Decimal
	Payments      []readmodel.PaymentRM
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	venue := "Safari Park Gardens"
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		EventName:     "Nairobi Tech Summit",
		OrganizerName: "Wanjiku Events",
		VenueName:     &venue,
		EventDates:    []time.Time{date},
		Status:        "Confirmed",
		TotalAmount:   decimal.NewFromInt(120000),
		Payments: []readmodel.PaymentRM{
			{Method: "M-Pesa", Amount: decimal.NewFromInt(60000), TransactionID: "MP-001", PaidAt: date.AddDate(0, 0, -10)},
		},
		CreatedAt: date.AddDate(0, 0, -30),
	}
}

func (b *BookingBuilder) WithEventName(name string) *BookingBuilder {
	b.EventName = name
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithVenueName(name string) *BookingBuilder {
	b.VenueName = &name
	return b
}

func (b *BookingBuilder) WithoutVenue() *BookingBuilder {
	b.VenueName = nil
	return b
}

func (b *BookingBuilder) WithEventDates(dates ...time.Time) *BookingBuilder {
	b.EventDates = dates
	return b
}

func (b *BookingBuilder) WithPayments(payments ...readmodel.PaymentRM) *BookingBuilder {
	b.Payments = payments
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	paid := decimal.Zero
	for _, p := range b.Payments {
		paid = paid.Add(p.Amount)
	}
	return &readmodel.BookingRM{
		ID:                 uuid.New(),
		EventName:          b.EventName,
		OrganizerName:      b.OrganizerName,
		VenueName:          b.VenueName,
		EventDates:         b.EventDates,
		ExpectedAttendance: 300,
		TotalAmount:        b.TotalAmount,
		AmountPaid:         paid,
		Status:             b.Status,
		Payments:           b.Payments,
		CreatedAt:          b.CreatedAt,
	}
}
