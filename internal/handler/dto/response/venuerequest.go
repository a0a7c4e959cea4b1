package response

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VenueRequestResponse struct {
	ID                 uuid.UUID   `json:"id"`
	OrganizerID        uuid.UUID   `json:"organizerId"`
	OrganizerName      string      `json:"organizerName"`
	EventName          string      `json:"eventName"`
	EventDescription   string      `json:"eventDescription"`
	EventDates         []time.Time `json:"eventDates"`
	ExpectedAttendance int32       `json:"expectedAttendance"`
	VenueID            *uuid.UUID  `json:"venueId,omitempty"`
	VenueName          *string     `json:"venueName,omitempty"`
	IsRead             bool        `json:"isRead"`
	Responded          bool        `json:"responded"`
	RequestDate        time.Time   `json:"requestDate"`
	AdditionalRequests *string     `json:"additionalRequests,omitempty"`
}

func FromVenueRequest(rm *readmodel.VenueRequestRM) *VenueRequestResponse {
	return &VenueRequestResponse{
		ID:                 rm.ID,
		OrganizerID:        rm.OrganizerID,
		OrganizerName:      rm.OrganizerName,
		EventName:          rm.EventName,
		EventDescription:   rm.EventDescription,
		EventDates:         rm.EventDates,
		ExpectedAttendance: rm.ExpectedAttendance,
		VenueID:            rm.VenueID,
		VenueName:          rm.VenueName,
		IsRead:             rm.IsRead,
		Responded:          rm.Responded,
		RequestDate:        rm.RequestDate,
		AdditionalRequests: rm.AdditionalRequests,
	}
}

func FromVenueRequests(rms []*readmodel.VenueRequestRM) []*VenueRequestResponse {
	out := make([]*VenueRequestResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromVenueRequest(rm))
	}
	return out
}

type QuotationResponse struct {
	ID            uuid.UUID         `json:"id"`
	RequestID     uuid.UUID         `json:"requestId"`
	EventName     string            `json:"eventName"`
	OrganizerName string            `json:"organizerName"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	DailyRates    []decimal.Decimal `json:"dailyRates"`
	Notes         *string           `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func FromQuotation(rm *readmodel.QuotationRM) *QuotationResponse {
	return &QuotationResponse{
		ID:            rm.ID,
		RequestID:     rm.RequestID,
		EventName:     rm.EventName,
		OrganizerName: rm.OrganizerName,
		TotalAmount:   rm.TotalAmount,
		DailyRates:    rm.DailyRates,
		Notes:         rm.Notes,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromQuotations(rms []*readmodel.QuotationRM) []*QuotationResponse {
	out := make([]*QuotationResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromQuotation(rm))
	}
	return out
}
