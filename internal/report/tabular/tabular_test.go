//go:build unit

package tabular_test

import (
	"testing"
	"time"

	"eventease-admin/internal/report/tabular"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name      string
	Venue     string
	Amount    float64
	CreatedAt time.Time
}

func sampleRows() []row {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []row{
		{Name: "Tech Summit", Venue: "Safari Park", Amount: 120000, CreatedAt: base},
		{Name: "Wedding Expo", Venue: "Uhuru Gardens", Amount: 85000, CreatedAt: base.AddDate(0, 0, -40)},
		{Name: "Music Festival", Venue: "Safari Park", Amount: 300000, CreatedAt: base.AddDate(0, 0, -3)},
		{Name: "Book Fair", Venue: "", Amount: 15000, CreatedAt: base.AddDate(0, 0, -10)},
		{Name: "tech meetup", Venue: "Uhuru Gardens", Amount: 5000, CreatedAt: base.AddDate(0, 0, -1)},
	}
}

func TestFilter(t *testing.T) {
	rows := sampleRows()

	t.Run("result is always a subset of the input", func(t *testing.T) {
		preds := []tabular.Predicate[row]{
			tabular.TextSearch("tech", func(r row) string { return r.Name }),
			tabular.FieldEquals("Safari Park", func(r row) string { return r.Venue }),
			nil,
		}
		got := tabular.Filter(rows, preds...)
		assert.LessOrEqual(t, len(got), len(rows))
		for _, g := range got {
			assert.Contains(t, rows, g)
		}
	})

	t.Run("nil predicates are unconstrained", func(t *testing.T) {
		got := tabular.Filter(rows, nil, nil)
		assert.Empty(t, cmp.Diff(rows, got))
	})

	t.Run("predicates combine with AND", func(t *testing.T) {
		got := tabular.Filter(rows,
			tabular.TextSearch("tech", func(r row) string { return r.Name }),
			tabular.FieldEquals("Uhuru Gardens", func(r row) string { return r.Venue }),
		)
		require.Len(t, got, 1)
		assert.Equal(t, "tech meetup", got[0].Name)
	})

	t.Run("text search is case-insensitive substring across fields", func(t *testing.T) {
		got := tabular.Filter(rows, tabular.TextSearch("SAFARI",
			func(r row) string { return r.Name },
			func(r row) string { return r.Venue },
		))
		assert.Len(t, got, 2)
	})

	t.Run("all sentinel means no constraint", func(t *testing.T) {
		for _, want := range []string{"", "all", "All", "ALL"} {
			got := tabular.Filter(rows, tabular.FieldEquals(want, func(r row) string { return r.Venue }))
			assert.Len(t, got, len(rows), "sentinel %q", want)
		}
	})

	t.Run("within days keeps rows on or after the cutoff", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		got := tabular.Filter(rows, tabular.WithinDays(now, 7, func(r row) time.Time { return r.CreatedAt }))
		assert.Len(t, got, 3)

		unconstrained := tabular.Filter(rows, tabular.WithinDays(now, 0, func(r row) time.Time { return r.CreatedAt }))
		assert.Len(t, unconstrained, len(rows))
	})
}

func TestOrder(t *testing.T) {
	rows := sampleRows()
	byAmount := tabular.ByFloat(func(r row) float64 { return r.Amount })

	t.Run("does not mutate the input", func(t *testing.T) {
		before := make([]row, len(rows))
		copy(before, rows)
		_ = tabular.Order(rows, byAmount, tabular.Descending)
		assert.Empty(t, cmp.Diff(before, rows))
	})

	t.Run("sort is idempotent", func(t *testing.T) {
		once := tabular.Order(rows, byAmount, tabular.Ascending)
		twice := tabular.Order(once, byAmount, tabular.Ascending)
		assert.Empty(t, cmp.Diff(once, twice))
	})

	t.Run("stable on ties regardless of direction", func(t *testing.T) {
		byVenue := tabular.ByString(func(r row) string { return r.Venue })
		asc := tabular.Order(rows, byVenue, tabular.Ascending)

		// Safari Park rows keep input order: Tech Summit before Music Festival
		var safari []string
		for _, r := range asc {
			if r.Venue == "Safari Park" {
				safari = append(safari, r.Name)
			}
		}
		assert.Equal(t, []string{"Tech Summit", "Music Festival"}, safari)

		desc := tabular.Order(rows, byVenue, tabular.Descending)
		safari = safari[:0]
		for _, r := range desc {
			if r.Venue == "Safari Park" {
				safari = append(safari, r.Name)
			}
		}
		assert.Equal(t, []string{"Tech Summit", "Music Festival"}, safari)
	})

	t.Run("string comparison folds case", func(t *testing.T) {
		byName := tabular.ByString(func(r row) string { return r.Name })
		got := tabular.Order(rows, byName, tabular.Ascending)
		names := make([]string, 0, len(got))
		for _, r := range got {
			names = append(names, r.Name)
		}
		assert.Equal(t, []string{"Book Fair", "Music Festival", "tech meetup", "Tech Summit", "Wedding Expo"}, names)
	})
}

func TestSortSelect(t *testing.T) {
	t.Run("selecting the active key flips direction", func(t *testing.T) {
		s := tabular.Sort{Key: "amount", Direction: tabular.Ascending}
		s = s.Select("amount")
		assert.Equal(t, tabular.Descending, s.Direction)
	})

	t.Run("selecting a new key resets to ascending", func(t *testing.T) {
		s := tabular.Sort{Key: "amount", Direction: tabular.Descending}
		s = s.Select("name")
		assert.Equal(t, tabular.Sort{Key: "name", Direction: tabular.Ascending}, s)
	})

	t.Run("double toggle restores the original order", func(t *testing.T) {
		rows := sampleRows()
		byAmount := tabular.ByFloat(func(r row) float64 { return r.Amount })

		s := tabular.Sort{Key: "amount", Direction: tabular.Ascending}
		original := tabular.Order(rows, byAmount, s.Direction)

		s = s.Select("amount")
		s = s.Select("amount")
		restored := tabular.Order(rows, byAmount, s.Direction)
		assert.Empty(t, cmp.Diff(original, restored))
	})
}

func TestPaginate(t *testing.T) {
	rows := sampleRows()

	t.Run("concatenated pages reproduce the input exactly once", func(t *testing.T) {
		size := 2
		var all []row
		first := tabular.Paginate(rows, 1, size)
		for page := 1; page <= first.TotalPages; page++ {
			all = append(all, tabular.Paginate(rows, page, size).Items...)
		}
		assert.Empty(t, cmp.Diff(rows, all))
	})

	t.Run("page number clamps to valid range", func(t *testing.T) {
		got := tabular.Paginate(rows, 99, 2)
		assert.Equal(t, 3, got.Number)
		assert.Len(t, got.Items, 1)

		got = tabular.Paginate(rows, 0, 2)
		assert.Equal(t, 1, got.Number)
	})

	t.Run("empty input yields a single empty page", func(t *testing.T) {
		got := tabular.Paginate([]row{}, 5, 7)
		assert.Equal(t, 1, got.Number)
		assert.Equal(t, 1, got.TotalPages)
		assert.Equal(t, 0, got.TotalItems)
		assert.Empty(t, got.Items)
	})

	t.Run("non-positive size falls back to the default", func(t *testing.T) {
		got := tabular.Paginate(rows, 1, 0)
		assert.Equal(t, 10, got.Size)
		assert.Len(t, got.Items, len(rows))
	})
}
