//go:build e2e

package ticket_test

import (
	"fmt"
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
	ticketsURL  = "/api/tickets"
)

type ticketSuite struct {
	e2e.SharedSuite
}

func TestTicketSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ticketSuite))
}

type account struct {
	ID          uuid.UUID
	Email       string
	AccessToken string
}

func (s *ticketSuite) signUp(username, email string) account {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqdto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var reg resdto.RegisterResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reg))

	return account{ID: reg.ID, Email: email, AccessToken: s.login(email)}
}

func (s *ticketSuite) login(email string) string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
		Email:    email,
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var login resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &login))
	return login.AccessToken
}

// promote flips the role in the database and logs in again so the new role
// lands in the token.
func (s *ticketSuite) promote(acct *account, role string) {
	dbtest.SetUserRole(s.T(), s.DB, acct.ID, role)
	acct.AccessToken = s.login(acct.Email)
}

func (s *ticketSuite) openTicket(acct account, subject string) uuid.UUID {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL, reqdto.CreateTicketRequest{
		Subject: subject,
		Body:    "The renter never showed up at the meeting point.",
	}, acct.AccessToken)
	require.Equal(t, http.StatusCreated, w.Code, "ticket creation failed: %s", w.Body.String())

	var created resdto.IDResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created.ID
}

func (s *ticketSuite) TestStatusChangesAreStaffOnly() {
	requester := s.signUp("requester1", "requester1@example.com")
	agent := s.signUp("agent1", "agent1@example.com")
	s.promote(&agent, "support")

	ticketID := s.openTicket(requester, "No-show renter")

	s.Run("the requester cannot close their own ticket", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/close", ticketsURL, ticketID), nil, requester.AccessToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("support resolves and reopens", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/tickets/%s/resolve", ticketID), nil, agent.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reopen", ticketsURL, ticketID), nil, requester.AccessToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reopen", ticketsURL, ticketID), nil, agent.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("support closes", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/close", ticketsURL, ticketID), nil, agent.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", ticketsURL, ticketID), nil, requester.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var view resdto.TicketResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &view))
		require.Equal(s.T(), "closed", view.Status)
	})
}

func (s *ticketSuite) TestRepliesStayOpenAfterResolution() {
	requester := s.signUp("requester2", "requester2@example.com")
	agent := s.signUp("agent2", "agent2@example.com")
	s.promote(&agent, "support")

	ticketID := s.openTicket(requester, "Deposit not returned")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("/api/admin/tickets/%s/resolve", ticketID), nil, agent.AccessToken)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%s/replies", ticketsURL, ticketID), reqdto.ReplyTicketRequest{
			Message: "Still nothing on my account, can you check again?",
		}, requester.AccessToken)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var reply resdto.TicketReplyResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &reply))
	require.Equal(s.T(), requester.ID, reply.SenderID)
	require.Equal(s.T(), "Still nothing on my account, can you check again?", reply.Message)
}
