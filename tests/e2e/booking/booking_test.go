//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/usecase/queries"
	"driveshare/tests/common/dbtest"
	"driveshare/tests/common/httptest"
	"driveshare/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	bookingsURL = "/api/bookings"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

type account struct {
	ID          uuid.UUID
	AccessToken string
}

func (s *bookingSuite) signUp(username, email string) account {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqdto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var reg resdto.RegisterResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reg))

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
		Email:    email,
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var login resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &login))

	return account{ID: reg.ID, AccessToken: login.AccessToken}
}

func (s *bookingSuite) notificationTopics(recipientID uuid.UUID) []string {
	t := s.T()

	rows, err := s.DB.Query(context.Background(),
		"SELECT topic FROM notifications WHERE recipient_id = $1 ORDER BY created_at", recipientID)
	require.NoError(t, err)
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		require.NoError(t, rows.Scan(&topic))
		topics = append(topics, topic)
	}
	require.NoError(t, rows.Err())
	return topics
}

func (s *bookingSuite) TestBookingFlow() {
	s.Run("renter books an available car and the owner approves", func() {
		owner := s.signUp("owner1", "owner1@example.com")
		renter := s.signUp("renter1", "renter1@example.com")
		carID := dbtest.CreateTestCar(s.T(), s.DB, owner.ID, "available")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			CarID:     carID,
			StartDate: "2026-10-01",
			EndDate:   "2026-10-03",
		}, renter.AccessToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, "booking failed: %s", w.Body.String())

		var view queries.BookingView
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &view))
		s.Equal("pending", view.Status)

		// Three inclusive days at 100.00 with a 10 percent platform fee.
		s.Equal("300.00", view.TotalCost)
		s.Equal("30.00", view.PlatformFee)
		s.Equal("270.00", view.OwnerPayout)

		// Creation queues one message for each side: confirmation for the
		// renter, an action request for the owner.
		s.Equal([]string{"booking.created"}, s.notificationTopics(renter.ID))
		s.Equal([]string{"booking.requested"}, s.notificationTopics(owner.ID))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			bookingsURL+"/"+view.ID.String()+"/approve", nil, owner.AccessToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			bookingsURL+"/"+view.ID.String(), nil, renter.AccessToken)
		s.Equal(http.StatusOK, w.Code)

		var after queries.BookingView
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &after))
		s.Equal("approved", after.Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			bookingsURL+"/"+view.ID.String()+"/complete", nil, owner.AccessToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())

		// Completion credits the renter's loyalty balance once.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/users/me/profile", nil, renter.AccessToken)
		s.Equal(http.StatusOK, w.Code)

		var profile queries.UserProfileView
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &profile))
		s.Equal(50, profile.Points)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			bookingsURL+"/"+view.ID.String()+"/complete", nil, owner.AccessToken)
		s.Equal(http.StatusConflict, w.Code, "completed is terminal")
	})

	s.Run("overlapping dates are rejected", func() {
		owner := s.signUp("owner2", "owner2@example.com")
		renterA := s.signUp("renter2a", "renter2a@example.com")
		renterB := s.signUp("renter2b", "renter2b@example.com")
		carID := dbtest.CreateTestCar(s.T(), s.DB, owner.ID, "available")
		dbtest.CreateTestBooking(s.T(), s.DB, renterA.ID, carID, "2026-10-01", "2026-10-05", "approved")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			CarID:     carID,
			StartDate: "2026-10-05",
			EndDate:   "2026-10-07",
		}, renterB.AccessToken)
		s.Equal(http.StatusConflict, w.Code, "end-date overlap must conflict: %s", w.Body.String())

		// The day after the existing booking ends is free.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			CarID:     carID,
			StartDate: "2026-10-06",
			EndDate:   "2026-10-07",
		}, renterB.AccessToken)
		s.Equal(http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("owners cannot book their own car", func() {
		owner := s.signUp("owner3", "owner3@example.com")
		carID := dbtest.CreateTestCar(s.T(), s.DB, owner.ID, "available")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			CarID:     carID,
			StartDate: "2026-10-01",
			EndDate:   "2026-10-02",
		}, owner.AccessToken)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("a stranger cannot read someone else's booking", func() {
		owner := s.signUp("owner4", "owner4@example.com")
		renter := s.signUp("renter4", "renter4@example.com")
		outsider := s.signUp("outsider4", "outsider4@example.com")
		carID := dbtest.CreateTestCar(s.T(), s.DB, owner.ID, "available")
		bookingID := dbtest.CreateTestBooking(s.T(), s.DB, renter.ID, carID, "2026-10-01", "2026-10-03", "pending")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			bookingsURL+"/"+bookingID.String(), nil, outsider.AccessToken)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
