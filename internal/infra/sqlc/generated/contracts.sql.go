// Maintained by hand in the layout sqlc v1.29.0 emits for sqlc.yaml.
// Running sqlc generate overwrites it; keep queries/ and this file in step.
// source: contracts.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createContract = `-- name: CreateContract :exec
INSERT INTO contracts (
    id, contract_number, customer_id, created_by, start_date, end_date,
    status, total_value, total_days, notes, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
)
`

type CreateContractParams struct {
	ID             uuid.UUID
	ContractNumber string
	CustomerID     uuid.UUID
	CreatedBy      uuid.UUID
	StartDate      pgtype.Date
	EndDate        pgtype.Date
	Status         string
	TotalValue     pgtype.Numeric
	TotalDays      int32
	Notes          pgtype.Text
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateContract(ctx context.Context, db DBTX, arg CreateContractParams) error {
	_, err := db.Exec(ctx, createContract,
		arg.ID,
		arg.ContractNumber,
		arg.CustomerID,
		arg.CreatedBy,
		arg.StartDate,
		arg.EndDate,
		arg.Status,
		arg.TotalValue,
		arg.TotalDays,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getContractDetail = `-- name: GetContractDetail :one
SELECT
    c.id, c.contract_number, c.customer_id, p.name AS customer_name,
    c.created_by, cu.name AS created_by_name,
    c.approved_by, au.name AS approved_by_name,
    c.start_date, c.end_date, c.status, c.total_value, c.total_days,
    c.notes, c.cancellation_reason,
    c.approved_at, c.activated_at, c.finished_at, c.cancelled_at,
    c.created_at, c.updated_at
FROM contracts c
JOIN persons p ON p.id = c.customer_id
JOIN users cu ON cu.id = c.created_by
LEFT JOIN users au ON au.id = c.approved_by
WHERE c.id = $1 AND c.deleted_at IS NULL
`

type GetContractDetailRow struct {
	ID                 uuid.UUID
	ContractNumber     string
	CustomerID         uuid.UUID
	CustomerName       string
	CreatedBy          uuid.UUID
	CreatedByName      string
	ApprovedBy         pgtype.UUID
	ApprovedByName     pgtype.Text
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	Status             string
	TotalValue         pgtype.Numeric
	TotalDays          int32
	Notes              pgtype.Text
	CancellationReason pgtype.Text
	ApprovedAt         pgtype.Timestamptz
	ActivatedAt        pgtype.Timestamptz
	FinishedAt         pgtype.Timestamptz
	CancelledAt        pgtype.Timestamptz
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

func (q *Queries) GetContractDetail(ctx context.Context, db DBTX, id uuid.UUID) (GetContractDetailRow, error) {
	row := db.QueryRow(ctx, getContractDetail, id)
	var i GetContractDetailRow
	err := row.Scan(
		&i.ID,
		&i.ContractNumber,
		&i.CustomerID,
		&i.CustomerName,
		&i.CreatedBy,
		&i.CreatedByName,
		&i.ApprovedBy,
		&i.ApprovedByName,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.TotalValue,
		&i.TotalDays,
		&i.Notes,
		&i.CancellationReason,
		&i.ApprovedAt,
		&i.ActivatedAt,
		&i.FinishedAt,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getContractForUpdate = `-- name: GetContractForUpdate :one
SELECT id, contract_number, customer_id, created_by, approved_by, start_date, end_date, status, total_value, total_days, notes, cancellation_reason, approved_at, activated_at, finished_at, cancelled_at, deleted_at, created_at, updated_at FROM contracts
WHERE id = $1 AND deleted_at IS NULL
FOR UPDATE
`

func (q *Queries) GetContractForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Contracts, error) {
	row := db.QueryRow(ctx, getContractForUpdate, id)
	var i Contracts
	err := row.Scan(
		&i.ID,
		&i.ContractNumber,
		&i.CustomerID,
		&i.CreatedBy,
		&i.ApprovedBy,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.TotalValue,
		&i.TotalDays,
		&i.Notes,
		&i.CancellationReason,
		&i.ApprovedAt,
		&i.ActivatedAt,
		&i.FinishedAt,
		&i.CancelledAt,
		&i.DeletedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listReservingPeriods = `-- name: ListReservingPeriods :many
SELECT DISTINCT c.id, c.contract_number, c.start_date, c.end_date
FROM contracts c
JOIN contract_items ci ON ci.contract_id = c.id
WHERE ci.equipment_id = $1
  AND c.status IN ('approved', 'active')
  AND c.deleted_at IS NULL
  AND c.end_date >= $2
  AND ($3::uuid IS NULL OR c.id <> $3::uuid)
ORDER BY c.start_date, c.id
`

type ListReservingPeriodsParams struct {
	EquipmentID uuid.UUID
	FromDate    pgtype.Date
	ExcludeID   pgtype.UUID
}

type ListReservingPeriodsRow struct {
	ID             uuid.UUID
	ContractNumber string
	StartDate      pgtype.Date
	EndDate        pgtype.Date
}

func (q *Queries) ListReservingPeriods(ctx context.Context, db DBTX, arg ListReservingPeriodsParams) ([]ListReservingPeriodsRow, error) {
	rows, err := db.Query(ctx, listReservingPeriods, arg.EquipmentID, arg.FromDate, arg.ExcludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListReservingPeriodsRow
	for rows.Next() {
		var i ListReservingPeriodsRow
		if err := rows.Scan(
			&i.ID,
			&i.ContractNumber,
			&i.StartDate,
			&i.EndDate,
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

const lockEquipment = `-- name: LockEquipment :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::uuid::text, 0))
`

func (q *Queries) LockEquipment(ctx context.Context, db DBTX, equipmentID uuid.UUID) error {
	_, err := db.Exec(ctx, lockEquipment, equipmentID)
	return err
}

const updateContract = `-- name: UpdateContract :execrows
UPDATE contracts SET
    start_date = $2,
    end_date = $3,
    status = $4,
    total_value = $5,
    total_days = $6,
    notes = $7,
    cancellation_reason = $8,
    approved_by = $9,
    approved_at = $10,
    activated_at = $11,
    finished_at = $12,
    cancelled_at = $13,
    deleted_at = $14,
    updated_at = $15
WHERE id = $1
`

type UpdateContractParams struct {
	ID                 uuid.UUID
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	Status             string
	TotalValue         pgtype.Numeric
	TotalDays          int32
	Notes              pgtype.Text
	CancellationReason pgtype.Text
	ApprovedBy         pgtype.UUID
	ApprovedAt         pgtype.Timestamptz
	ActivatedAt        pgtype.Timestamptz
	FinishedAt         pgtype.Timestamptz
	CancelledAt        pgtype.Timestamptz
	DeletedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

func (q *Queries) UpdateContract(ctx context.Context, db DBTX, arg UpdateContractParams) (int64, error) {
	result, err := db.Exec(ctx, updateContract,
		arg.ID,
		arg.StartDate,
		arg.EndDate,
		arg.Status,
		arg.TotalValue,
		arg.TotalDays,
		arg.Notes,
		arg.CancellationReason,
		arg.ApprovedBy,
		arg.ApprovedAt,
		arg.ActivatedAt,
		arg.FinishedAt,
		arg.CancelledAt,
		arg.DeletedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
