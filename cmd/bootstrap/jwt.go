package bootstrap

import (
	"rental-contracts/internal/pkg/clock"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT, clk)
}
