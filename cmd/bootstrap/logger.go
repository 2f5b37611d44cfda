package bootstrap

import (
	"log/slog"
	"time"

	"rental-contracts/internal/handler/middleware"
	"rental-contracts/internal/pkg/config"

	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

// NewLogger also installs the configured handler as the slog default.
func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}
