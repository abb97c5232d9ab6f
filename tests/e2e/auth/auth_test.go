//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/tests/common/httptest"
	"driveshare/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) register(username, email, password string) resdto.RegisterResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqdto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var resp resdto.RegisterResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp
}

func (s *authSuite) login(email, password string) resdto.LoginResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	return resp
}

func (s *authSuite) TestRegisterAndLogin() {
	s.Run("register then login returns tokens and the user view", func() {
		s.register("alice", "alice@example.com", "password123")

		resp := s.login("alice@example.com", "password123")
		s.NotEmpty(resp.AccessToken)
		s.NotEmpty(resp.RefreshToken)
		s.Equal("alice@example.com", resp.User.Email)
		s.Equal("regular", resp.User.Role)
	})

	s.Run("duplicate email is rejected", func() {
		s.register("bob", "bob@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqdto.RegisterRequest{
			Username: "bob2",
			Email:    "bob@example.com",
			Password: "password123",
		}, "")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("wrong password is rejected", func() {
		s.register("carol", "carol@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "carol@example.com",
			Password: "wrongpassword",
		}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown user is rejected with the same status", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		s.register("dave", "dave@example.com", "password123")
		tokens := s.login("dave@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, tokens.AccessToken)
		s.Equal(http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &body))
		s.Equal("dave@example.com", body["email"])
	})

	s.Run("rejects requests without a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRefreshAndLogout() {
	s.Run("refresh token rotates the pair", func() {
		s.register("erin", "erin@example.com", "password123")
		tokens := s.login("erin@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, reqdto.RefreshRequest{
			RefreshToken: tokens.RefreshToken,
		}, "")
		s.Equal(http.StatusOK, w.Code)

		var resp resdto.RefreshResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &resp))
		s.NotEmpty(resp.AccessToken)
	})

	s.Run("access token stops working after logout", func() {
		s.register("frank", "frank@example.com", "password123")
		tokens := s.login("frank@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, tokens.AccessToken)
		s.Equal(http.StatusOK, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, tokens.AccessToken)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
