package components

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rental-contracts/internal/infra/outbox"
	"rental-contracts/internal/infra/repository"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/clock"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const idempotencySweepInterval = time.Hour

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			outbox.NewLogPublisher,
			fx.As(new(outbox.Publisher)),
		),
		NewOutboxRelay,
	),
	fx.Invoke(
		startOutboxRelay,
		startIdempotencySweeper,
	),
)

func NewOutboxRelay(
	pool *pgxpool.Pool,
	q *sqlc.Queries,
	publisher outbox.Publisher,
	clk clock.Clock,
	m *metrics.OutboxMetrics,
	cfg config.Config,
) *outbox.Relay {
	return outbox.NewRelay(pool, q, publisher, clk, m, cfg.Outbox)
}

func startOutboxRelay(lc fx.Lifecycle, relay *outbox.Relay, cfg config.Config, logger *slog.Logger) {
	if !cfg.Outbox.Enabled {
		logger.Info("outbox relay disabled")
		return
	}
	runBackground(lc, "outbox relay", logger, relay.Run)
}

func startIdempotencySweeper(lc fx.Lifecycle, repo *repository.IdempotencyRepository, logger *slog.Logger) {
	runBackground(lc, "idempotency sweeper", logger, func(ctx context.Context) {
		ticker := time.NewTicker(idempotencySweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := repo.DeleteExpired(ctx)
				if err != nil {
					logger.Warn("failed to delete expired idempotency keys", "error", err.Error())
					continue
				}
				if n > 0 {
					logger.Info("deleted expired idempotency keys", "count", n)
				}
			}
		}
	})
}

func runBackground(lc fx.Lifecycle, name string, logger *slog.Logger, run func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting background worker", "worker", name)
			wg.Add(1)
			go func() {
				defer wg.Done()
				run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				logger.Info("background worker stopped", "worker", name)
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			return nil
		},
	})
}
