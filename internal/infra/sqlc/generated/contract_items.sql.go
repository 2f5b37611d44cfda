// Maintained by hand in the layout sqlc v1.29.0 emits for sqlc.yaml.
// Running sqlc generate overwrites it; keep queries/ and this file in step.
// source: contract_items.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createContractItem = `-- name: CreateContractItem :exec
INSERT INTO contract_items (
    id, contract_id, equipment_id, quantity, daily_rate, subtotal, notes, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9
)
`

type CreateContractItemParams struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	EquipmentID uuid.UUID
	Quantity    int32
	DailyRate   pgtype.Numeric
	Subtotal    pgtype.Numeric
	Notes       pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateContractItem(ctx context.Context, db DBTX, arg CreateContractItemParams) error {
	_, err := db.Exec(ctx, createContractItem,
		arg.ID,
		arg.ContractID,
		arg.EquipmentID,
		arg.Quantity,
		arg.DailyRate,
		arg.Subtotal,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const listContractItemDetails = `-- name: ListContractItemDetails :many
SELECT
    ci.id, ci.equipment_id, e.name AS equipment_name, ci.quantity,
    ci.daily_rate, ci.subtotal, ci.notes
FROM contract_items ci
JOIN equipment e ON e.id = ci.equipment_id
WHERE ci.contract_id = $1
ORDER BY ci.created_at, ci.id
`

type ListContractItemDetailsRow struct {
	ID            uuid.UUID
	EquipmentID   uuid.UUID
	EquipmentName string
	Quantity      int32
	DailyRate     pgtype.Numeric
	Subtotal      pgtype.Numeric
	Notes         pgtype.Text
}

func (q *Queries) ListContractItemDetails(ctx context.Context, db DBTX, contractID uuid.UUID) ([]ListContractItemDetailsRow, error) {
	rows, err := db.Query(ctx, listContractItemDetails, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListContractItemDetailsRow
	for rows.Next() {
		var i ListContractItemDetailsRow
		if err := rows.Scan(
			&i.ID,
			&i.EquipmentID,
			&i.EquipmentName,
			&i.Quantity,
			&i.DailyRate,
			&i.Subtotal,
			&i.Notes,
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

const listContractItems = `-- name: ListContractItems :many
SELECT id, contract_id, equipment_id, quantity, daily_rate, subtotal, notes, created_at, updated_at FROM contract_items
WHERE contract_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListContractItems(ctx context.Context, db DBTX, contractID uuid.UUID) ([]ContractItems, error) {
	rows, err := db.Query(ctx, listContractItems, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContractItems
	for rows.Next() {
		var i ContractItems
		if err := rows.Scan(
			&i.ID,
			&i.ContractID,
			&i.EquipmentID,
			&i.Quantity,
			&i.DailyRate,
			&i.Subtotal,
			&i.Notes,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateContractItemSubtotal = `-- name: UpdateContractItemSubtotal :exec
UPDATE contract_items SET subtotal = $2, updated_at = $3
WHERE id = $1
`

type UpdateContractItemSubtotalParams struct {
	ID        uuid.UUID
	Subtotal  pgtype.Numeric
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateContractItemSubtotal(ctx context.Context, db DBTX, arg UpdateContractItemSubtotalParams) error {
	_, err := db.Exec(ctx, updateContractItemSubtotal, arg.ID, arg.Subtotal, arg.UpdatedAt)
	return err
}
