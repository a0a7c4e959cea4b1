// Package calendar builds the month grid for the events calendar: leading
// blank cells up to the weekday of the 1st, then one cell per day listing the
// events whose date set includes that day.
package calendar

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID        uuid.UUID   `json:"id"`
	EventName string      `json:"event_name"`
	VenueName *string     `json:"venue_name,omitempty"`
	Status    string      `json:"status"`
	Dates     []time.Time `json:"dates"`
}

type Day struct {
	Day    int     `json:"day"`
	Events []Event `json:"events"`
}

type Grid struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leading_blanks"`
	Days          []Day      `json:"days"`
}

// BuildMonthGrid lays out the given month. Events spanning adjacent months
// contribute only the dates falling inside the displayed month; days with no
// events get an empty (non-nil) slice so they render as an explicit empty state.
func BuildMonthGrid(year int, month time.Month, events []Event) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := Grid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]Day, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		cell := Day{Day: day, Events: []Event{}}
		for _, ev := range events {
			if eventOnDay(ev, year, month, day) {
				cell.Events = append(cell.Events, ev)
			}
		}
		grid.Days = append(grid.Days, cell)
	}
	return grid
}

func eventOnDay(ev Event, year int, month time.Month, day int) bool {
	for _, d := range ev.Dates {
		if d.Year() == year && d.Month() == month && d.Day() == day {
			return true
		}
	}
	return false
}
