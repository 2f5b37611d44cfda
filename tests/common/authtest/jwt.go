//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rental-contracts/internal/domain/user"
	"rental-contracts/internal/pkg/clock"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/jwt"
	"rental-contracts/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg, clock.NewRealClock()).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issuedAt := time.Now().Add(-h.cfg.AccessTokenDuration - time.Minute)
	token, err := jwt.NewService(h.cfg, clock.NewMockClock(issuedAt)).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateUserWithToken inserts a user and signs a token for it.
func (h *JWTHelper) CreateUserWithToken(t *testing.T, db dbtest.DBLike, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role.String())
	return id, h.GenerateToken(t, id, role)
}
