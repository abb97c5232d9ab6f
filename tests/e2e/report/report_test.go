//go:build e2e

package report_test

import (
	"context"
	"net/http"
	"testing"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
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
	reportsURL  = "/api/reports"
)

type reportSuite struct {
	e2e.SharedSuite
}

func TestReportSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reportSuite))
}

type account struct {
	ID          uuid.UUID
	AccessToken string
}

func (s *reportSuite) signUp(username, email string) account {
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

func (s *reportSuite) TestFilingNotifiesEveryAdmin() {
	adminOne := dbtest.CreateTestUser(s.T(), s.DB, "modone", "modone@example.com", "admin")
	adminTwo := dbtest.CreateTestUser(s.T(), s.DB, "modtwo", "modtwo@example.com", "admin")

	owner := s.signUp("flagged-owner", "flagged-owner@example.com")
	reporter := s.signUp("reporter1", "reporter1@example.com")
	carID := dbtest.CreateTestCar(s.T(), s.DB, owner.ID, "available")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reportsURL, reqdto.CreateReportRequest{
		TargetType: "car",
		TargetID:   carID,
		Reason:     "Photos do not match the actual car",
	}, reporter.AccessToken)
	require.Equal(s.T(), http.StatusCreated, w.Code, "report failed: %s", w.Body.String())

	var created resdto.IDResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &created))

	recipients := s.topicRecipients("report.filed")
	require.Len(s.T(), recipients, 2)
	require.Contains(s.T(), recipients, adminOne)
	require.Contains(s.T(), recipients, adminTwo)
	require.NotContains(s.T(), recipients, reporter.ID)
}

func (s *reportSuite) topicRecipients(topic string) []uuid.UUID {
	t := s.T()

	rows, err := s.DB.Query(context.Background(),
		"SELECT recipient_id FROM notifications WHERE topic = $1", topic)
	require.NoError(t, err)
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}
