// Maintained by hand in the layout sqlc v1.29.0 emits for sqlc.yaml.
// Running sqlc generate overwrites it; keep queries/ and this file in step.
// source: idempotency_keys.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const claimExpiredIdempotencyKey = `-- name: ClaimExpiredIdempotencyKey :execrows
UPDATE idempotency_keys
SET request_hash = $3, status = 'processing', result_contract_id = NULL,
    expires_at = $4, updated_at = now()
WHERE key = $1 AND user_id = $2 AND expires_at < now()
`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         string
	UserID      uuid.UUID
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, claimExpiredIdempotencyKey,
		arg.Key,
		arg.UserID,
		arg.RequestHash,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const completeIdempotencyKey = `-- name: CompleteIdempotencyKey :exec
UPDATE idempotency_keys
SET status = 'completed', result_contract_id = $3, updated_at = now()
WHERE key = $1 AND user_id = $2
`

type CompleteIdempotencyKeyParams struct {
	Key              string
	UserID           uuid.UUID
	ResultContractID pgtype.UUID
}

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.UserID, arg.ResultContractID)
	return err
}

const deleteExpiredIdempotencyKeys = `-- name: DeleteExpiredIdempotencyKeys :execrows
DELETE FROM idempotency_keys WHERE expires_at < now()
`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredIdempotencyKeys)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getIdempotencyKey = `-- name: GetIdempotencyKey :one
SELECT key, user_id, endpoint, request_hash, status, result_contract_id, expires_at, created_at, updated_at FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`

type GetIdempotencyKeyParams struct {
	Key    string
	UserID uuid.UUID
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKeys, error) {
	row := db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.UserID)
	var i IdempotencyKeys
	err := row.Scan(
		&i.Key,
		&i.UserID,
		&i.Endpoint,
		&i.RequestHash,
		&i.Status,
		&i.ResultContractID,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const tryInsertIdempotencyKey = `-- name: TryInsertIdempotencyKey :execrows
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO NOTHING
`

type TryInsertIdempotencyKeyParams struct {
	Key         string
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, tryInsertIdempotencyKey,
		arg.Key,
		arg.UserID,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
