//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"eventease-admin/internal/report/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthGrid(t *testing.T) {
	t.Run("leading blanks equal the weekday of the 1st", func(t *testing.T) {
		// October 2025 has 31 days and starts on a Wednesday
		grid := calendar.BuildMonthGrid(2025, time.October, nil)
		assert.Equal(t, 3, grid.LeadingBlanks)
		assert.Len(t, grid.Days, 31)
	})

	t.Run("sunday start has no leading blanks", func(t *testing.T) {
		// June 2025 starts on a Sunday
		grid := calendar.BuildMonthGrid(2025, time.June, nil)
		assert.Equal(t, 0, grid.LeadingBlanks)
		assert.Len(t, grid.Days, 30)
	})

	t.Run("events land on every matching day", func(t *testing.T) {
		ev := calendar.Event{
			ID:        uuid.New(),
			EventName: "Nairobi Food Festival",
			Status:    "upcoming",
			Dates:     []time.Time{day(2025, time.March, 15), day(2025, time.March, 16)},
		}
		grid := calendar.BuildMonthGrid(2025, time.March, []calendar.Event{ev})

		require.Len(t, grid.Days, 31)
		require.Len(t, grid.Days[14].Events, 1)
		assert.Equal(t, ev.ID, grid.Days[14].Events[0].ID)
		require.Len(t, grid.Days[15].Events, 1)
		assert.Empty(t, grid.Days[16].Events)
	})

	t.Run("dates outside the displayed month are ignored", func(t *testing.T) {
		ev := calendar.Event{
			ID:        uuid.New(),
			EventName: "Cross-Month Conference",
			Status:    "upcoming",
			Dates:     []time.Time{day(2025, time.March, 31), day(2025, time.April, 1)},
		}

		march := calendar.BuildMonthGrid(2025, time.March, []calendar.Event{ev})
		assert.Len(t, march.Days[30].Events, 1)

		april := calendar.BuildMonthGrid(2025, time.April, []calendar.Event{ev})
		assert.Len(t, april.Days[0].Events, 1)
		assert.Empty(t, april.Days[1].Events)
	})

	t.Run("days without events carry an empty non-nil slice", func(t *testing.T) {
		grid := calendar.BuildMonthGrid(2025, time.February, nil)
		for _, d := range grid.Days {
			assert.NotNil(t, d.Events)
		}
	})
}
