//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"rental-contracts/internal/domain/user"
	resdto "rental-contracts/internal/handler/dto/response"
	"rental-contracts/tests/common/dbtest"
	"rental-contracts/tests/common/httptest"
	"rental-contracts/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const meURL = "/api/auth/me"

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestMe() {
	s.Run("success: returns the token's user", func() {
		id, token := s.JWT.CreateUserWithToken(s.T(), s.DB, "operator@example.com", user.RoleOperator)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("operator", body.Role)
		s.True(body.IsActive)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with expired token", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
		token := s.JWT.CreateExpiredToken(s.T(), id, user.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 403 for inactive account", func() {
		id, token := s.JWT.CreateUserWithToken(s.T(), s.DB, "inactive@example.com", user.RoleAdmin)
		dbtest.DeactivateUser(s.T(), s.DB, id)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})

	s.Run("error: 404 for unknown user", func() {
		token := s.JWT.GenerateToken(s.T(), uuid.New(), user.RoleViewer)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
