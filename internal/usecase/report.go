package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"eventease-admin/internal/currency"
	"eventease-admin/internal/export"
	"eventease-admin/internal/pkg/clock"
	"eventease-admin/internal/report/tabular"
	"eventease-admin/internal/usecase/readmodel"

	"github.com/shopspring/decimal"
)

// PerformancePageSize is the fixed page size of the venue performance report.
const PerformancePageSize = 7

// BookingReportQuery carries the booking report controls. Zero values mean
// unconstrained; Venue and Status accept the "all" sentinel.
type BookingReportQuery struct {
	Search  string
	Status  string
	Venue   string
	Days    int
	SortKey string
	SortDir string
	Page    int
	Size    int
}

// BookingSummary is computed over the filtered set, before pagination, so the
// cards always describe exactly the rows the filters admit.
type BookingSummary struct {
	Total        int             `json:"total"`
	Confirmed    int             `json:"confirmed"`
	Tentative    int             `json:"tentative"`
	Cancelled    int             `json:"cancelled"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type BookingsReport struct {
	Summary BookingSummary                     `json:"summary"`
	Page    tabular.Page[*readmodel.BookingRM] `json:"page"`
}

// VenuePerformanceRow aggregates the filtered bookings per venue.
type VenuePerformanceRow struct {
	VenueName       string          `json:"venue_name"`
	Bookings        int             `json:"bookings"`
	Confirmed       int             `json:"confirmed"`
	Revenue         decimal.Decimal `json:"revenue"`
	TotalAttendance int64           `json:"total_attendance"`
}

type PerformanceReport struct {
	Page tabular.Page[VenuePerformanceRow] `json:"page"`
}

type RevenueSlice struct {
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
}

type FinancialReport struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	ByVenue         []RevenueSlice  `json:"by_venue"`
	ByPaymentMethod []RevenueSlice  `json:"by_payment_method"`
}

type ReportUseCase interface {
	BookingsReport(ctx context.Context, q BookingReportQuery) (*BookingsReport, error)
	PerformanceReport(ctx context.Context, q BookingReportQuery) (*PerformanceReport, error)
	FinancialReport(ctx context.Context, q BookingReportQuery) (*FinancialReport, error)
	ExportBookings(ctx context.Context, q BookingReportQuery) (export.Table, error)
}

type reportUseCaseImpl struct {
	bookingRepo BookingRepository
	converter   *currency.Converter
	clk         clock.Clock
}

func NewReportUseCase(bookingRepo BookingRepository, converter *currency.Converter, clk clock.Clock) ReportUseCase {
	return &reportUseCaseImpl{
		bookingRepo: bookingRepo,
		converter:   converter,
		clk:         clk,
	}
}

func (u *reportUseCaseImpl) BookingsReport(ctx context.Context, q BookingReportQuery) (*BookingsReport, error) {
	filtered, err := u.filteredBookings(ctx, q)
	if err != nil {
		return nil, err
	}

	summary := BookingSummary{Total: len(filtered), TotalRevenue: decimal.Zero}
	for _, b := range filtered {
		switch strings.ToLower(b.Status) {
		case "confirmed":
			summary.Confirmed++
		case "tentative":
			summary.Tentative++
		case "cancelled":
			summary.Cancelled++
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(u.bookingRevenue(b))
	}

	sorted := tabular.Order(filtered, bookingComparator(q.SortKey), direction(q.SortDir))
	page := tabular.Paginate(sorted, q.Page, q.Size)

	return &BookingsReport{Summary: summary, Page: page}, nil
}

// PerformanceReport groups the filtered bookings per venue. The page size is
// fixed at 7 rows; out-of-range pages clamp, so a page kept from a previous
// filter state can never land outside the new result set.
func (u *reportUseCaseImpl) PerformanceReport(ctx context.Context, q BookingReportQuery) (*PerformanceReport, error) {
	filtered, err := u.filteredBookings(ctx, q)
	if err != nil {
		return nil, err
	}

	byVenue := make(map[string]*VenuePerformanceRow)
	order := make([]string, 0)
	for _, b := range filtered {
		name := venueLabel(b)
		row, ok := byVenue[name]
		if !ok {
			row = &VenuePerformanceRow{VenueName: name, Revenue: decimal.Zero}
			byVenue[name] = row
			order = append(order, name)
		}
		row.Bookings++
		if strings.EqualFold(b.Status, "confirmed") {
			row.Confirmed++
		}
		row.Revenue = row.Revenue.Add(u.bookingRevenue(b))
		row.TotalAttendance += int64(b.ExpectedAttendance)
	}

	rows := make([]VenuePerformanceRow, 0, len(order))
	for _, name := range order {
		rows = append(rows, *byVenue[name])
	}

	sorted := tabular.Order(rows, performanceComparator(q.SortKey), direction(q.SortDir))
	return &PerformanceReport{Page: tabular.Paginate(sorted, q.Page, PerformancePageSize)}, nil
}

func (u *reportUseCaseImpl) FinancialReport(ctx context.Context, q BookingReportQuery) (*FinancialReport, error) {
	filtered, err := u.filteredBookings(ctx, q)
	if err != nil {
		return nil, err
	}

	report := &FinancialReport{TotalRevenue: decimal.Zero}
	byVenue := make(map[string]int)
	byMethod := make(map[string]int)

	for _, b := range filtered {
		revenue := u.bookingRevenue(b)
		report.TotalRevenue = report.TotalRevenue.Add(revenue)

		venue := venueLabel(b)
		if idx, ok := byVenue[venue]; ok {
			report.ByVenue[idx].Revenue = report.ByVenue[idx].Revenue.Add(revenue)
		} else {
			byVenue[venue] = len(report.ByVenue)
			report.ByVenue = append(report.ByVenue, RevenueSlice{Label: venue, Revenue: revenue})
		}

		for _, p := range b.Payments {
			converted := u.converter.Convert(p.Amount, p.Method)
			if idx, ok := byMethod[p.Method]; ok {
				report.ByPaymentMethod[idx].Revenue = report.ByPaymentMethod[idx].Revenue.Add(converted)
			} else {
				byMethod[p.Method] = len(report.ByPaymentMethod)
				report.ByPaymentMethod = append(report.ByPaymentMethod, RevenueSlice{Label: p.Method, Revenue: converted})
			}
		}
	}
	return report, nil
}

// ExportBookings renders the same filtered, sorted rows the booking report
// shows, without pagination.
func (u *reportUseCaseImpl) ExportBookings(ctx context.Context, q BookingReportQuery) (export.Table, error) {
	filtered, err := u.filteredBookings(ctx, q)
	if err != nil {
		return export.Table{}, err
	}
	sorted := tabular.Order(filtered, bookingComparator(q.SortKey), direction(q.SortDir))

	table := export.Table{
		Title:   "Bookings Report",
		Columns: []string{"Event", "Organizer", "Venue", "Dates", "Attendance", "Status", "Total Amount", "Amount Paid (KES)"},
		Rows:    make([][]string, 0, len(sorted)),
	}
	for _, b := range sorted {
		table.Rows = append(table.Rows, []string{
			b.EventName,
			b.OrganizerName,
			venueLabel(b),
			formatDates(b.EventDates),
			strconv.FormatInt(int64(b.ExpectedAttendance), 10),
			b.Status,
			b.TotalAmount.StringFixed(2),
			u.bookingRevenue(b).StringFixed(2),
		})
	}
	return table, nil
}

func (u *reportUseCaseImpl) filteredBookings(ctx context.Context, q BookingReportQuery) ([]*readmodel.BookingRM, error) {
	bookings, err := u.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return tabular.Filter(bookings,
		tabular.TextSearch(q.Search,
			func(b *readmodel.BookingRM) string { return b.EventName },
			func(b *readmodel.BookingRM) string { return b.OrganizerName },
			func(b *readmodel.BookingRM) string { return venueLabel(b) },
		),
		tabular.FieldEquals(q.Status, func(b *readmodel.BookingRM) string { return b.Status }),
		tabular.FieldEquals(q.Venue, venueLabel),
		tabular.WithinDays(u.clk.Now(), q.Days, func(b *readmodel.BookingRM) time.Time { return b.CreatedAt }),
	), nil
}

// bookingRevenue sums the booking's payments with currency conversion applied
// per method. Bookings recorded before payment breakdowns existed fall back to
// the stored aggregate.
func (u *reportUseCaseImpl) bookingRevenue(b *readmodel.BookingRM) decimal.Decimal {
	if len(b.Payments) == 0 {
		return b.AmountPaid
	}
	sum := decimal.Zero
	for _, p := range b.Payments {
		sum = sum.Add(u.converter.Convert(p.Amount, p.Method))
	}
	return sum
}

func venueLabel(b *readmodel.BookingRM) string {
	if b.VenueName == nil {
		return ""
	}
	return *b.VenueName
}

func direction(dir string) tabular.Direction {
	if strings.EqualFold(dir, "desc") {
		return tabular.Descending
	}
	return tabular.Ascending
}

func bookingComparator(key string) tabular.Comparator[*readmodel.BookingRM] {
	switch strings.ToLower(key) {
	case "event":
		return tabular.ByString(func(b *readmodel.BookingRM) string { return b.EventName })
	case "organizer":
		return tabular.ByString(func(b *readmodel.BookingRM) string { return b.OrganizerName })
	case "venue":
		return tabular.ByString(venueLabel)
	case "amount":
		return tabular.ByFloat(func(b *readmodel.BookingRM) float64 { return b.TotalAmount.InexactFloat64() })
	case "status":
		return tabular.ByString(func(b *readmodel.BookingRM) string { return b.Status })
	case "date", "":
		return tabular.ByTime(func(b *readmodel.BookingRM) time.Time { return b.CreatedAt })
	default:
		return nil
	}
}

func performanceComparator(key string) tabular.Comparator[VenuePerformanceRow] {
	switch strings.ToLower(key) {
	case "venue":
		return tabular.ByString(func(r VenuePerformanceRow) string { return r.VenueName })
	case "revenue":
		return tabular.ByFloat(func(r VenuePerformanceRow) float64 { return r.Revenue.InexactFloat64() })
	case "bookings", "":
		return tabular.ByFloat(func(r VenuePerformanceRow) float64 { return float64(r.Bookings) })
	default:
		return nil
	}
}

func formatDates(dates []time.Time) string {
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, d.Format("2006-01-02"))
	}
	return strings.Join(parts, "; ")
}
