//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"eventease-admin/internal/currency"
	"eventease-admin/internal/pkg/clock"
	"eventease-admin/internal/usecase"
	"eventease-admin/internal/usecase/readmodel"
	"eventease-admin/tests/common/builder"
	usecasemock "eventease-admin/tests/mock/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type ReportUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	bookingRepo *usecasemock.MockBookingRepository
	useCase     usecase.ReportUseCase
}

func (s *ReportUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.mockCtrl)

	converter := currency.NewConverter(currency.NewStaticRateSource(decimal.NewFromFloat(3.75)))
	s.useCase = usecase.NewReportUseCase(s.bookingRepo, converter, clock.NewMockClock(testNow))
}

func (s *ReportUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReportUseCaseTestSuite))
}

func fixtureBookings() []*readmodel.BookingRM {
	return []*readmodel.BookingRM{
		builder.NewBookingBuilder().
			WithEventName("Tech Summit").
			WithVenueName("Safari Park").
			WithStatus("Confirmed").
			WithPayments(readmodel.PaymentRM{Method: "M-Pesa", Amount: decimal.NewFromInt(60000), TransactionID: "MP-001", PaidAt: testNow}).
			WithCreatedAt(testNow.AddDate(0, 0, -2)).
			BuildReadModel(),
		builder.NewBookingBuilder().
			WithEventName("Wedding Expo").
			WithVenueName("Uhuru Gardens").
			WithStatus("Tentative").
			WithPayments(readmodel.PaymentRM{Method: "PayPal", Amount: decimal.NewFromInt(1000), TransactionID: "PP-001", PaidAt: testNow}).
			WithCreatedAt(testNow.AddDate(0, 0, -5)).
			BuildReadModel(),
		builder.NewBookingBuilder().
			WithEventName("Music Festival").
			WithVenueName("Safari Park").
			WithStatus("Cancelled").
			WithPayments().
			WithCreatedAt(testNow.AddDate(0, 0, -60)).
			BuildReadModel(),
	}
}

func (s *ReportUseCaseTestSuite) TestBookingsReport() {
	s.Run("summary is computed over the filtered set", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		report, err := s.useCase.BookingsReport(context.Background(), usecase.BookingReportQuery{
			Venue: "Safari Park",
		})
		s.Require().NoError(err)

		s.Equal(2, report.Summary.Total)
		s.Equal(1, report.Summary.Confirmed)
		s.Equal(0, report.Summary.Tentative)
		s.Equal(1, report.Summary.Cancelled)
		s.Len(report.Page.Items, 2)
	})

	s.Run("PayPal payments are converted before summing revenue", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		report, err := s.useCase.BookingsReport(context.Background(), usecase.BookingReportQuery{
			Venue: "Uhuru Gardens",
		})
		s.Require().NoError(err)

		// 1000 THB via PayPal at 3.75
		s.True(report.Summary.TotalRevenue.Equal(decimal.NewFromInt(3750)),
			"got %s", report.Summary.TotalRevenue)
	})

	s.Run("aggregate over filtered equals independent recompute", func() {
		bookings := fixtureBookings()
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(bookings, nil)

		query := usecase.BookingReportQuery{Days: 30}
		report, err := s.useCase.BookingsReport(context.Background(), query)
		s.Require().NoError(err)

		// recompute by hand over the rows the filter admits
		cutoff := testNow.AddDate(0, 0, -30)
		expectedTotal := 0
		for _, b := range bookings {
			if !b.CreatedAt.Before(cutoff) {
				expectedTotal++
			}
		}
		s.Equal(expectedTotal, report.Summary.Total)
		s.Equal(expectedTotal, report.Page.TotalItems)
	})

	s.Run("date filter drops rows older than the window", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		report, err := s.useCase.BookingsReport(context.Background(), usecase.BookingReportQuery{Days: 30})
		s.Require().NoError(err)
		s.Equal(2, report.Summary.Total)
		s.Equal(0, report.Summary.Cancelled)
	})

	s.Run("sorts by the requested key and direction", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		report, err := s.useCase.BookingsReport(context.Background(), usecase.BookingReportQuery{
			SortKey: "event",
			SortDir: "desc",
		})
		s.Require().NoError(err)
		s.Require().Len(report.Page.Items, 3)
		s.Equal("Wedding Expo", report.Page.Items[0].EventName)
		s.Equal("Music Festival", report.Page.Items[2].EventName)
	})
}

func (s *ReportUseCaseTestSuite) TestPerformanceReport() {
	s.Run("groups bookings per venue with a fixed page size", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		report, err := s.useCase.PerformanceReport(context.Background(), usecase.BookingReportQuery{})
		s.Require().NoError(err)

		s.Equal(usecase.PerformancePageSize, report.Page.Size)
		s.Require().Len(report.Page.Items, 2)

		byName := map[string]usecase.VenuePerformanceRow{}
		for _, r := range report.Page.Items {
			byName[r.VenueName] = r
		}
		s.Equal(2, byName["Safari Park"].Bookings)
		s.Equal(1, byName["Safari Park"].Confirmed)
		s.Equal(1, byName["Uhuru Gardens"].Bookings)
	})

	s.Run("out-of-range page clamps instead of going empty", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		report, err := s.useCase.PerformanceReport(context.Background(), usecase.BookingReportQuery{Page: 50})
		s.Require().NoError(err)
		s.Equal(1, report.Page.Number)
		s.NotEmpty(report.Page.Items)
	})
}

func (s *ReportUseCaseTestSuite) TestFinancialReport() {
	s.Run("revenue splits by venue and payment method", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		report, err := s.useCase.FinancialReport(context.Background(), usecase.BookingReportQuery{})
		s.Require().NoError(err)

		// 60000 (M-Pesa) + 1000 * 3.75 (PayPal)
		s.True(report.TotalRevenue.Equal(decimal.NewFromInt(63750)), "got %s", report.TotalRevenue)

		methods := map[string]decimal.Decimal{}
		for _, slice := range report.ByPaymentMethod {
			methods[slice.Label] = slice.Revenue
		}
		s.True(methods["M-Pesa"].Equal(decimal.NewFromInt(60000)))
		s.True(methods["PayPal"].Equal(decimal.NewFromInt(3750)))
	})
}

func (s *ReportUseCaseTestSuite) TestExportBookings() {
	s.Run("renders the filtered rows without pagination", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		table, err := s.useCase.ExportBookings(context.Background(), usecase.BookingReportQuery{})
		s.Require().NoError(err)

		s.Equal("Bookings Report", table.Title)
		s.Len(table.Rows, 3)
		for _, row := range table.Rows {
			s.Len(row, len(table.Columns))
		}
	})
}
