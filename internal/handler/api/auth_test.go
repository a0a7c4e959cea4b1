//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"eventease-admin/internal/handler/api"
	reqdto "eventease-admin/internal/handler/dto/request"
	resdto "eventease-admin/internal/handler/dto/response"
	"eventease-admin/internal/pkg/config"
	"eventease-admin/internal/pkg/cookie"
	"eventease-admin/internal/usecase"
	"eventease-admin/tests/common/builder"
	"eventease-admin/tests/common/httptest"
	"eventease-admin/tests/common/testutil"
	usecasemock "eventease-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase, config.NewTestConfig().Cookie, time.Hour)

	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		// Stands in for the auth middleware on protected routes
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("staff_id", uuid.New())
			}
			handler(c)
		}
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", authed(s.handler.Me))
	s.router.POST("/auth/change_password", authed(s.handler.ChangePassword))
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := reqdto.LoginRequest{Email: "admin@eventease.co.ke", Password: "password123"}
	returnStaff := builder.NewStaffBuilder().BuildReadModel()
	expectedToken := "test-jwt-token"

	s.Run("success: returns 200 OK and sets the token cookie", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(expectedToken, returnStaff, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnStaff.Email, response.Staff.Email)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal(expectedToken, tokenCookie.Value)
		s.True(tokenCookie.HttpOnly)
	})

	s.Run("success: email is normalized before lookup", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), "admin@eventease.co.ke", reqBody.Password).
			Return(expectedToken, returnStaff, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "  Admin@EventEase.co.ke "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "empty email", mutate: testutil.Field("email", "")},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				useCaseError:   usecase.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "staff not found",
				useCaseError:   usecase.ErrStaffNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "internal server error",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
					Return("", nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Empty(tokenCookie.Value)
		s.Negative(tokenCookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnStaff := builder.NewStaffBuilder().BuildReadModel()

	s.Run("success: returns current staff info", func() {
		s.mockUseCase.EXPECT().GetCurrentStaff(gomock.Any(), gomock.Any()).
			Return(returnStaff, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnStaff.Email, response["email"])
	})

	s.Run("error: 401 when staff_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Staff not authenticated")
	})

	s.Run("error: 404 when staff no longer exists", func() {
		s.mockUseCase.EXPECT().GetCurrentStaff(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrStaffNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Staff not found")
	})
}

func (s *AuthHandlerTestSuite) TestChangePassword() {
	url := "/auth/change_password"
	reqBody := reqdto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password-1"}

	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), reqBody.CurrentPassword, reqBody.NewPassword).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when new password is under 8 chars", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("newPassword", "short"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "wrong current password",
				useCaseError:   usecase.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Current password is incorrect",
			},
			{
				name:           "weak new password",
				useCaseError:   usecase.ErrWeakPassword,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "New password does not meet requirements",
			},
			{
				name:           "staff not found",
				useCaseError:   usecase.ErrStaffNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Staff not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), reqBody.CurrentPassword, reqBody.NewPassword).
					Return(tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
