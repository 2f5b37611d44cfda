//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rental-contracts/internal/handler/api"
	resdto "rental-contracts/internal/handler/dto/response"
	"rental-contracts/internal/usecase/queries"
	"rental-contracts/tests/common/builder"
	"rental-contracts/tests/common/httptest"
	queriesmock "rental-contracts/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockUserQueries
	handler     *api.AuthHandler
	userID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockQueries)
	s.userID = uuid.New()

	s.router.GET("/auth/me", func(c *gin.Context) {
		// stands in for RequireAuth
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns the current user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Email)
		s.Equal(returnUser.Role, response.Role)
	})

	s.Run("error: 401 without authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "user not found", queriesError: queries.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "User not found"},
			{name: "user inactive", queriesError: queries.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "Account is inactive"},
			{name: "internal server error", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
