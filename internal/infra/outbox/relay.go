package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rental-contracts/internal/infra/repository"
	"rental-contracts/internal/pkg/clock"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/errs"
	"rental-contracts/internal/pkg/metrics"
	"rental-contracts/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Relay drains contract_events into a Publisher. Several relays may run at
// once; rows are claimed with SKIP LOCKED so each event goes to one of them.
type Relay struct {
	db        TxBeginner
	queries   repository.ContractEventWriteQueries
	publisher Publisher
	clock     clock.Clock
	metrics   *metrics.OutboxMetrics
	cfg       config.OutboxConfig
}

func NewRelay(
	db TxBeginner,
	queries repository.ContractEventWriteQueries,
	publisher Publisher,
	clk clock.Clock,
	m *metrics.OutboxMetrics,
	cfg config.OutboxConfig,
) *Relay {
	return &Relay{
		db:        db,
		queries:   queries,
		publisher: publisher,
		clock:     clk,
		metrics:   m,
		cfg:       cfg,
	}
}

// Run relays on every tick until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval())
	defer ticker.Stop()

	for {
		if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("outbox relay pass failed", "error", err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RelayOnce publishes one batch and returns how many events were delivered.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to begin outbox transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback outbox transaction", "error", rollbackErr.Error())
		}
	}()

	repo := repository.NewContractEventRepository(r.queries, tx)
	rows, err := repo.ClaimQueued(ctx, tx, r.batchSize())
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, row := range rows {
		event := Event{
			ID:         row.ID,
			ContractID: row.ContractID,
			Kind:       row.Kind,
			Payload:    row.Payload,
			Attempts:   int(row.Attempts),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}

		if perr := r.publisher.Publish(ctx, event); perr != nil {
			retry := event.Attempts+1 < r.cfg.MaxAttempts
			if err := repo.MarkFailed(ctx, tx, row.ID, perr.Error(), retry); err != nil {
				return delivered, err
			}
			outcome := "failed"
			if retry {
				outcome = "retry"
			}
			r.metrics.IncRelayed(event.Kind, outcome)
			slog.Warn("contract event publish failed",
				"event_id", event.ID.String(),
				"kind", event.Kind,
				"attempt", event.Attempts+1,
				"retry", retry,
				"error", perr.Error())
			continue
		}

		if err := repo.MarkPublished(ctx, tx, row.ID, r.clock.Now()); err != nil {
			return delivered, err
		}
		r.metrics.IncRelayed(event.Kind, "published")
		delivered++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "failed to commit outbox transaction")
	}
	return delivered, nil
}

const defaultInterval = 2 * time.Second

func (r *Relay) interval() time.Duration {
	if r.cfg.Interval <= 0 {
		return defaultInterval
	}
	return r.cfg.Interval
}

func (r *Relay) batchSize() int32 {
	if r.cfg.BatchSize <= 0 {
		return 50
	}
	return int32(r.cfg.BatchSize) // #nosec G115 -- small configured batch
}
