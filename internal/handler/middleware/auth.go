package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"rental-contracts/internal/domain/user"
	"rental-contracts/internal/handler/httperr"
	"rental-contracts/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken     = errors.New("missing bearer token")
	errInvalidToken     = errors.New("invalid bearer token")
	errPermissionDenied = errors.New("permission denied")
	errNoAuthContext    = errors.New("permission check without authenticated user")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken,
				httperr.CodeUnauthorized, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errors.Join(errInvalidToken, err),
				httperr.CodeUnauthorized, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequirePermission must run after RequireAuth.
func (m *AuthMiddleware) RequirePermission(p user.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext,
				httperr.CodeInternal, "Internal server error", nil)
			return
		}

		if !role.Can(p) {
			httperr.AbortWithError(c, http.StatusForbidden, errPermissionDenied,
				httperr.CodeForbidden, "Insufficient permissions", gin.H{"required": string(p)})
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
