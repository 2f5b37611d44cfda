package repository

import (
	"context"
	"time"

	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"
	"rental-contracts/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	EventStatusQueued    = "queued"
	EventStatusPublished = "published"
	EventStatusFailed    = "failed"
)

type ContractEventWriteQueries interface {
	CreateContractEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateContractEventParams) error
	ClaimQueuedContractEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ContractEvents, error)
	MarkContractEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkContractEventPublishedParams) error
	MarkContractEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkContractEventFailedParams) error
}

type ContractEventRepository struct {
	queries ContractEventWriteQueries
	db      sqlc.DBTX
}

func NewContractEventRepository(queries ContractEventWriteQueries, db sqlc.DBTX) *ContractEventRepository {
	return &ContractEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ContractEventRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, event shared.ContractEvent) error {
	params := sqlc.CreateContractEventParams{
		ContractID: event.ContractID,
		Kind:       event.Kind,
		Payload:    event.Payload,
		CreatedAt:  pgconv.TimeToPgtype(event.OccurredAt),
	}

	if err := r.queries.CreateContractEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue contract event", err)
	}

	return nil
}

// ClaimQueued locks up to limit queued events, skipping rows held by other relays.
func (r *ContractEventRepository) ClaimQueued(ctx context.Context, tx sqlc.DBTX, limit int32) ([]sqlc.ContractEvents, error) {
	rows, err := r.queries.ClaimQueuedContractEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim contract events", err)
	}
	return rows, nil
}

func (r *ContractEventRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID, at time.Time) error {
	params := sqlc.MarkContractEventPublishedParams{
		ID:          eventID,
		PublishedAt: pgconv.TimeToPgtype(at),
	}

	if err := r.queries.MarkContractEventPublished(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark contract event published", err)
	}
	return nil
}

// MarkFailed records lastError. retry keeps the event queued for the next pass.
func (r *ContractEventRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID, lastError string, retry bool) error {
	status := EventStatusFailed
	if retry {
		status = EventStatusQueued
	}

	params := sqlc.MarkContractEventFailedParams{
		ID:        eventID,
		Status:    status,
		LastError: pgtype.Text{String: lastError, Valid: true},
	}

	if err := r.queries.MarkContractEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update contract event status", err)
	}
	return nil
}
