//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"rental-contracts/internal/domain/user"
	"rental-contracts/internal/pkg/clock"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/errs"
	"rental-contracts/internal/pkg/jwt"
	"rental-contracts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", Issuer: "rental-contracts", AccessTokenDuration: time.Hour}
	svc := jwt.NewService(cfg, clock.NewRealClock())
	validator := usecase.NewTokenValidator(svc)

	t.Run("success: returns user and role", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateToken(id, user.RoleAdmin)
		require.NoError(t, err)

		gotID, role, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("error: unknown role in claims", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.Role("superuser"))
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrTokenValidation))
		assert.True(t, errs.Is(err, user.ErrInvalidRole))
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		other := cfg
		other.Secret = "other-secret"
		token, err := jwt.NewService(other, clock.NewRealClock()).GenerateToken(uuid.New(), user.RoleViewer)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrTokenValidation))
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("error: token issued for another service", func(t *testing.T) {
		other := cfg
		other.Issuer = "billing"
		token, err := jwt.NewService(other, clock.NewRealClock()).GenerateToken(uuid.New(), user.RoleViewer)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrTokenValidation))
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("error: expired token", func(t *testing.T) {
		issued := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
		token, err := jwt.NewService(cfg, issued).GenerateToken(uuid.New(), user.RoleViewer)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrExpiredToken))
	})
}
