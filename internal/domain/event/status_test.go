//go:build unit

package event_test

import (
	"testing"
	"time"

	"eventease-admin/internal/domain/event"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatus(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		dates []time.Time
		want  event.Status
	}{
		{name: "before the first date", dates: []time.Time{day(20)}, want: event.StatusUpcoming},
		{name: "on an event day", dates: []time.Time{day(15)}, want: event.StatusOngoing},
		{name: "between dates of a multi-day run", dates: []time.Time{day(14), day(16)}, want: event.StatusOngoing},
		{name: "after the last date", dates: []time.Time{day(10)}, want: event.StatusCompleted},
		{name: "no dates at all", dates: nil, want: event.StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, event.ComputeStatus(now, tc.dates))
		})
	}
}
