//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"eventease-admin/internal/handler/api"
	reqdto "eventease-admin/internal/handler/dto/request"
	resdto "eventease-admin/internal/handler/dto/response"
	"eventease-admin/internal/usecase"
	"eventease-admin/internal/usecase/readmodel"
	"eventease-admin/tests/common/builder"
	"eventease-admin/tests/common/httptest"
	"eventease-admin/tests/common/testutil"
	usecasemock "eventease-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockVenueUseCase
	handler     *api.VenueHandler
}

func (s *VenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockVenueUseCase(s.mockCtrl)
	s.handler = api.NewVenueHandler(s.mockUseCase)

	s.router.GET("/venues", s.handler.ListVenues)
	s.router.POST("/venues", s.handler.CreateVenue)
	s.router.GET("/venues/:id", s.handler.GetVenue)
	s.router.PATCH("/venues/:id", s.handler.UpdateVenue)
	s.router.DELETE("/venues/:id", s.handler.DeleteVenue)
}

func (s *VenueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(VenueHandlerTestSuite))
}

func (s *VenueHandlerTestSuite) TestListVenues() {
	s.Run("success: returns all venues", func() {
		returnVenues := []*readmodel.VenueRM{
			builder.NewVenueBuilder().BuildReadModel(),
			builder.NewVenueBuilder().WithName("Uhuru Gardens").AsUnavailable().BuildReadModel(),
		}
		s.mockUseCase.EXPECT().ListVenues(gomock.Any()).Return(returnVenues, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")

		var response []resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Safari Park Gardens", response[0].Name)
		s.False(response[1].Available)
	})

	s.Run("error: 500 on repository failure", func() {
		s.mockUseCase.EXPECT().ListVenues(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *VenueHandlerTestSuite) TestGetVenue() {
	returnVenue := builder.NewVenueBuilder().BuildReadModel()

	s.Run("success: returns the venue", func() {
		s.mockUseCase.EXPECT().GetVenue(gomock.Any(), returnVenue.ID).Return(returnVenue, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+returnVenue.ID.String(), nil, "")

		var response resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnVenue.ID, response.ID)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid venue ID")
	})

	s.Run("error: 404 when venue does not exist", func() {
		s.mockUseCase.EXPECT().GetVenue(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}

func (s *VenueHandlerTestSuite) TestCreateVenue() {
	url := "/venues"
	reqBody := reqdto.CreateVenueRequest{
		Name:        "Safari Park Gardens",
		Location:    "Nairobi",
		Capacity:    500,
		PricePerDay: decimal.NewFromInt(85000),
		Amenities:   []string{"Parking"},
		Available:   true,
	}

	s.Run("success: returns 201 Created", func() {
		returnVenue := builder.NewVenueBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().CreateVenue(gomock.Any(), gomock.Any()).Return(returnVenue, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnVenue.Name, response.Name)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing location", mutate: testutil.Field("location", nil)},
			{name: "zero capacity", mutate: testutil.Field("capacity", 0)},
			{name: "negative capacity", mutate: testutil.Field("capacity", -5)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *VenueHandlerTestSuite) TestUpdateVenue() {
	venueID := uuid.New()

	s.Run("success: patches only the provided fields", func() {
		updated := builder.NewVenueBuilder().WithCapacity(800).BuildReadModel()
		s.mockUseCase.EXPECT().UpdateVenue(gomock.Any(), venueID, gomock.Any()).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/venues/"+venueID.String(),
			map[string]any{"capacity": 800}, "")

		var response resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(800), response.Capacity)
	})

	s.Run("error: 404 when venue does not exist", func() {
		s.mockUseCase.EXPECT().UpdateVenue(gomock.Any(), venueID, gomock.Any()).
			Return(nil, usecase.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/venues/"+venueID.String(),
			map[string]any{"capacity": 800}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}

func (s *VenueHandlerTestSuite) TestDeleteVenue() {
	venueID := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().DeleteVenue(gomock.Any(), venueID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/venues/"+venueID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when venue is referenced by requests", func() {
		s.mockUseCase.EXPECT().DeleteVenue(gomock.Any(), venueID).
			Return(usecase.ErrVenueInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/venues/"+venueID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Venue is referenced")
	})

	s.Run("error: 404 when venue does not exist", func() {
		s.mockUseCase.EXPECT().DeleteVenue(gomock.Any(), venueID).
			Return(usecase.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/venues/"+venueID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})
}
