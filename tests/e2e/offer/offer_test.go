//go:build e2e

package offer_test

import (
	"fmt"
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
	registerURL    = "/api/auth/register"
	loginURL       = "/api/auth/login"
	offersURL      = "/api/offers"
	redemptionsURL = "/api/users/me/redemptions"
	profileURL     = "/api/users/me/profile"
)

type offerSuite struct {
	e2e.SharedSuite
}

func TestOfferSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(offerSuite))
}

type account struct {
	ID          uuid.UUID
	AccessToken string
}

func (s *offerSuite) signUp(username, email string) account {
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

func (s *offerSuite) points(acct account) int {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, acct.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, "profile fetch failed: %s", w.Body.String())

	var profile queries.UserProfileView
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &profile))
	return profile.Points
}

func (s *offerSuite) TestRedeemFlow() {
	s.Run("member spends points on an active offer", func() {
		member := s.signUp("member1", "member1@example.com")
		dbtest.AddUserPoints(s.T(), s.DB, member.ID, 100)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, "Free weekend upgrade", 80, true)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL, nil, member.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var listed []resdto.OfferResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &listed))
		require.Len(s.T(), listed, 1)
		require.Equal(s.T(), offerID, listed[0].ID)
		require.Equal(s.T(), 80, listed[0].PointsRequired)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/redeem", offersURL, offerID), nil, member.AccessToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, "redeem failed: %s", w.Body.String())

		require.Equal(s.T(), 20, s.points(member))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, redemptionsURL, nil, member.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var history []queries.RedemptionView
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &history))
		require.Len(s.T(), history, 1)
		require.Equal(s.T(), offerID, history[0].OfferID)
		require.Equal(s.T(), "Free weekend upgrade", history[0].OfferTitle)
		require.Equal(s.T(), 80, history[0].PointsSpent)
	})

	s.Run("redeeming past the balance is rejected", func() {
		member := s.signUp("member2", "member2@example.com")
		dbtest.AddUserPoints(s.T(), s.DB, member.ID, 50)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, "Free rental day", 200, true)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/redeem", offersURL, offerID), nil, member.AccessToken)
		require.Equal(s.T(), http.StatusConflict, w.Code)
		require.Contains(s.T(), w.Body.String(), "Not enough loyalty points")

		require.Equal(s.T(), 50, s.points(member))
	})

	s.Run("inactive offers are hidden and cannot be redeemed", func() {
		member := s.signUp("member3", "member3@example.com")
		dbtest.AddUserPoints(s.T(), s.DB, member.ID, 500)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, "Retired promotion", 100, false)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, offersURL, nil, member.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code)
		require.NotContains(s.T(), w.Body.String(), "Retired promotion")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/redeem", offersURL, offerID), nil, member.AccessToken)
		require.Equal(s.T(), http.StatusConflict, w.Code)
		require.Contains(s.T(), w.Body.String(), "Offer cannot be redeemed")
	})
}
