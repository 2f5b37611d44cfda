// Maintained by hand in the layout sqlc v1.29.0 emits for sqlc.yaml.
// Running sqlc generate overwrites it; keep queries/ and this file in step.
// source: contract_events.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const claimQueuedContractEvents = `-- name: ClaimQueuedContractEvents :many
SELECT id, contract_id, kind, payload, status, attempts, last_error, created_at, published_at FROM contract_events
WHERE status = 'queued'
ORDER BY created_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED
`

func (q *Queries) ClaimQueuedContractEvents(ctx context.Context, db DBTX, limit int32) ([]ContractEvents, error) {
	rows, err := db.Query(ctx, claimQueuedContractEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContractEvents
	for rows.Next() {
		var i ContractEvents
		if err := rows.Scan(
			&i.ID,
			&i.ContractID,
			&i.Kind,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.CreatedAt,
			&i.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createContractEvent = `-- name: CreateContractEvent :exec
INSERT INTO contract_events (contract_id, kind, payload, status, created_at)
VALUES ($1, $2, $3, 'queued', $4)
`

type CreateContractEventParams struct {
	ContractID uuid.UUID
	Kind       string
	Payload    []byte
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateContractEvent(ctx context.Context, db DBTX, arg CreateContractEventParams) error {
	_, err := db.Exec(ctx, createContractEvent,
		arg.ContractID,
		arg.Kind,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

const markContractEventFailed = `-- name: MarkContractEventFailed :exec
UPDATE contract_events
SET status = $2, attempts = attempts + 1, last_error = $3
WHERE id = $1
`

type MarkContractEventFailedParams struct {
	ID        uuid.UUID
	Status    string
	LastError pgtype.Text
}

func (q *Queries) MarkContractEventFailed(ctx context.Context, db DBTX, arg MarkContractEventFailedParams) error {
	_, err := db.Exec(ctx, markContractEventFailed, arg.ID, arg.Status, arg.LastError)
	return err
}

const markContractEventPublished = `-- name: MarkContractEventPublished :exec
UPDATE contract_events
SET status = 'published', attempts = attempts + 1, published_at = $2, last_error = NULL
WHERE id = $1
`

type MarkContractEventPublishedParams struct {
	ID          uuid.UUID
	PublishedAt pgtype.Timestamptz
}

func (q *Queries) MarkContractEventPublished(ctx context.Context, db DBTX, arg MarkContractEventPublishedParams) error {
	_, err := db.Exec(ctx, markContractEventPublished, arg.ID, arg.PublishedAt)
	return err
}
