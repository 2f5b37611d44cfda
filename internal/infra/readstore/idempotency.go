package readstore

import (
	"context"
	"time"

	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"
	"rental-contracts/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	now     func() time.Time
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		now:     time.Now,
	}
}

// Get returns KindNotFound for missing and expired keys alike.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key string, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record := &shared.IdempotencyRecord{
		Key:              row.Key,
		UserID:           row.UserID,
		Status:           row.Status,
		RequestHash:      row.RequestHash,
		ResultContractID: pgconv.UUIDPtrFromPgtype(row.ResultContractID),
		ExpiresAt:        pgconv.TimeFromPgtype(row.ExpiresAt),
	}

	if r.now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}
