package usecase

import (
	"context"
	"errors"
	"time"

	"eventease-admin/internal/domain/booking"
	"eventease-admin/internal/domain/event"
	"eventease-admin/internal/pkg/clock"
	"eventease-admin/internal/report/calendar"
	"eventease-admin/internal/report/tabular"
	"eventease-admin/internal/usecase/readmodel"
)

var ErrInvalidMonth = errors.New("invalid calendar month")

// EventFilter narrows the projected events list by free-text search and the
// computed temporal status.
type EventFilter struct {
	Search string
	Status string
}

type EventUseCase interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*readmodel.EventRM, error)
	Calendar(ctx context.Context, year int, month int) (calendar.Grid, error)
}

type eventUseCaseImpl struct {
	bookingRepo BookingRepository
	clk         clock.Clock
}

func NewEventUseCase(bookingRepo BookingRepository, clk clock.Clock) EventUseCase {
	return &eventUseCaseImpl{bookingRepo: bookingRepo, clk: clk}
}

// ListEvents projects confirmed bookings into events. The status is computed
// against the clock at read time, never stored.
func (u *eventUseCaseImpl) ListEvents(ctx context.Context, filter EventFilter) ([]*readmodel.EventRM, error) {
	events, err := u.projectEvents(ctx)
	if err != nil {
		return nil, err
	}

	return tabular.Filter(events,
		tabular.TextSearch(filter.Search,
			func(e *readmodel.EventRM) string { return e.EventName },
			func(e *readmodel.EventRM) string {
				if e.VenueName == nil {
					return ""
				}
				return *e.VenueName
			},
		),
		tabular.FieldEquals(filter.Status, func(e *readmodel.EventRM) string { return e.Status }),
	), nil
}

func (u *eventUseCaseImpl) Calendar(ctx context.Context, year int, month int) (calendar.Grid, error) {
	if month < 1 || month > 12 {
		return calendar.Grid{}, ErrInvalidMonth
	}

	events, err := u.projectEvents(ctx)
	if err != nil {
		return calendar.Grid{}, err
	}

	cells := make([]calendar.Event, 0, len(events))
	for _, e := range events {
		cells = append(cells, calendar.Event{
			ID:        e.ID,
			EventName: e.EventName,
			VenueName: e.VenueName,
			Status:    e.Status,
			Dates:     e.EventDates,
		})
	}
	return calendar.BuildMonthGrid(year, time.Month(month), cells), nil
}

func (u *eventUseCaseImpl) projectEvents(ctx context.Context) ([]*readmodel.EventRM, error) {
	bookings, err := u.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.clk.Now()
	events := make([]*readmodel.EventRM, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != booking.StatusConfirmed.String() {
			continue
		}
		events = append(events, &readmodel.EventRM{
			ID:                 b.ID,
			EventName:          b.EventName,
			VenueName:          b.VenueName,
			EventDates:         b.EventDates,
			ExpectedAttendance: b.ExpectedAttendance,
			Status:             event.ComputeStatus(now, b.EventDates).String(),
		})
	}
	return events, nil
}
