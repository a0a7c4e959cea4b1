// Package event projects confirmed bookings into display events with a
// computed temporal status.
package event

import "time"

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// ComputeStatus derives the temporal status from the event's date set:
// before the first date it is upcoming, after the end of the last date it is
// completed, anything in between is ongoing. No dates means completed.
func ComputeStatus(now time.Time, dates []time.Time) Status {
	if len(dates) == 0 {
		return StatusCompleted
	}

	first, last := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	dayStart := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	switch {
	case now.Before(dayStart):
		return StatusUpcoming
	case !now.Before(dayEnd):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}
