//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"driveshare/internal/domain/user"
	"driveshare/internal/handler/api"
	reqdto "driveshare/internal/handler/dto/request"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"
	"driveshare/tests/common/httptest"
	"driveshare/tests/common/testutil"
	commandsmock "driveshare/tests/mock/commands"
	queriesmock "driveshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	userID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock middleware behavior: a fixed authenticated regular user.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleRegular)
	})

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.GetByID)
	s.router.GET("/bookings", s.handler.ListMine)
	s.router.POST("/bookings/:id/approve", s.handler.Approve)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := reqdto.CreateBookingRequest{
		CarID:     uuid.New(),
		StartDate: "2026-07-01",
		EndDate:   "2026-07-03",
	}

	s.Run("success: returns 201 Created with the booking view", func() {
		view := &queries.BookingView{
			ID:          uuid.New(),
			UserID:      s.userID,
			CarID:       reqBody.CarID,
			StartDate:   reqBody.StartDate,
			EndDate:     reqBody.EndDate,
			TotalCost:   "200.00",
			PlatformFee: "20.00",
			OwnerPayout: "180.00",
			Status:      "pending",
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, reqBody).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("20.00", response.PlatformFee)
	})

	s.Run("error: 400 Bad Request when a date field is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("start_date", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid dates",
				commandsError:  commands.ErrInvalidBookingDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking dates",
			},
			{
				name:           "car not found",
				commandsError:  commands.ErrCarNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car not found",
			},
			{
				name:           "car unavailable",
				commandsError:  commands.ErrCarUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Car is not available",
			},
			{
				name:           "own car",
				commandsError:  commands.ErrOwnCarBooking,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Cannot book your own car",
			},
			{
				name:           "overlapping booking",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetByID() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns the booking", func() {
		view := &queries.BookingView{ID: bookingID, UserID: s.userID, Status: "approved"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, user.RoleRegular, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: access denied reads as 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, user.RoleRegular, bookingID).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/bookings"

	s.Run("success: empty result renders as empty array", func() {
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestApprove() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/approve"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), s.userID, user.RoleRegular, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not the car owner",
				commandsError:  commands.ErrNotBookingOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Insufficient permissions",
			},
			{
				name:           "already decided",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid booking state transition",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Approve(gomock.Any(), s.userID, user.RoleRegular, bookingID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: only the renter may cancel", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(commands.ErrNotBookingRenter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
