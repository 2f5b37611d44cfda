package api

import (
	"errors"
	"net/http"

	resdto "rental-contracts/internal/handler/dto/response"
	"rental-contracts/internal/handler/httperr"
	"rental-contracts/internal/handler/middleware"
	"rental-contracts/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoUserInContext = errors.New("user id missing from context")

// AuthHandler serves identity lookups. Tokens are issued elsewhere.
type AuthHandler struct {
	userQueries queries.UserQueries
}

func NewAuthHandler(userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		userQueries: userQueries,
	}
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUserInContext, httperr.CodeUnauthorized, "User not authenticated", nil)
		return
	}

	user, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "User not found", nil)
		case errors.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, httperr.CodeForbidden, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(user))
}
