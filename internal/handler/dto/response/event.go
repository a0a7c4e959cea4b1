package response

import (
	"time"

	"eventease-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID                 uuid.UUID   `json:"id"`
	EventName          string      `json:"eventName"`
	VenueName          *string     `json:"venueName,omitempty"`
	EventDates         []time.Time `json:"eventDates"`
	ExpectedAttendance int32       `json:"expectedAttendance"`
	Status             string      `json:"status"`
}

func FromEvent(rm *readmodel.EventRM) *EventResponse {
	return &EventResponse{
		ID:                 rm.ID,
		EventName:          rm.EventName,
		VenueName:          rm.VenueName,
		EventDates:         rm.EventDates,
		ExpectedAttendance: rm.ExpectedAttendance,
		Status:             rm.Status,
	}
}

func FromEvents(rms []*readmodel.EventRM) []*EventResponse {
	out := make([]*EventResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromEvent(rm))
	}
	return out
}
