//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"eventease-admin/internal/pkg/clock"
	"eventease-admin/internal/usecase"
	"eventease-admin/internal/usecase/readmodel"
	"eventease-admin/tests/common/builder"
	usecasemock "eventease-admin/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	bookingRepo *usecasemock.MockBookingRepository
	clk         *clock.MockClock
	useCase     usecase.EventUseCase
}

func (s *EventUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.clk = clock.NewMockClock(testNow)
	s.useCase = usecase.NewEventUseCase(s.bookingRepo, s.clk)
}

func (s *EventUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventUseCaseSuite(t *testing.T) {
	suite.Run(t, new(EventUseCaseTestSuite))
}

func (s *EventUseCaseTestSuite) TestListEvents() {
	s.Run("only confirmed bookings appear as events", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		events, err := s.useCase.ListEvents(context.Background(), usecase.EventFilter{})
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal("Tech Summit", events[0].EventName)
	})

	s.Run("status is computed against the clock", func() {
		past := builder.NewBookingBuilder().
			WithEventName("Past Gala").
			WithEventDates(testNow.AddDate(0, 0, -10)).
			BuildReadModel()
		today := builder.NewBookingBuilder().
			WithEventName("Launch Day").
			WithEventDates(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
			BuildReadModel()
		future := builder.NewBookingBuilder().
			WithEventName("Future Expo").
			WithEventDates(testNow.AddDate(0, 0, 10)).
			BuildReadModel()
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).
			Return([]*readmodel.BookingRM{past, today, future}, nil)

		events, err := s.useCase.ListEvents(context.Background(), usecase.EventFilter{})
		s.Require().NoError(err)
		s.Require().Len(events, 3)

		statuses := map[string]string{}
		for _, e := range events {
			statuses[e.EventName] = e.Status
		}
		s.Equal("completed", statuses["Past Gala"])
		s.Equal("ongoing", statuses["Launch Day"])
		s.Equal("upcoming", statuses["Future Expo"])
	})

	s.Run("status filter applies to the computed status", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		events, err := s.useCase.ListEvents(context.Background(), usecase.EventFilter{Status: "completed"})
		s.Require().NoError(err)
		s.Empty(events)
	})
}

func (s *EventUseCaseTestSuite) TestCalendar() {
	s.Run("rejects months outside 1-12", func() {
		for _, month := range []int{0, 13, -1} {
			_, err := s.useCase.Calendar(context.Background(), 2025, month)
			s.ErrorIs(err, usecase.ErrInvalidMonth, "month %d", month)
		}
	})

	s.Run("confirmed events land on their grid days", func() {
		s.bookingRepo.EXPECT().FindAll(gomock.Any()).Return(fixtureBookings(), nil)

		grid, err := s.useCase.Calendar(context.Background(), 2025, 3)
		s.Require().NoError(err)
		s.Require().Len(grid.Days, 31)
		s.Require().Len(grid.Days[14].Events, 1)
		s.Equal("Tech Summit", grid.Days[14].Events[0].EventName)
	})
}
