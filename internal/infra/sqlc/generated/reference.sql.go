// Maintained by hand in the layout sqlc v1.29.0 emits for sqlc.yaml.
// Running sqlc generate overwrites it; keep queries/ and this file in step.
// source: reference.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByID = `-- name: FindUserByID :one
SELECT id, email, name, role, is_active, created_at, updated_at FROM users
WHERE id = $1
`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, findUserByID, id)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Name,
		&i.Role,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getEquipmentByID = `-- name: GetEquipmentByID :one
SELECT id, name, daily_rate, is_active FROM equipment
WHERE id = $1 AND deleted_at IS NULL
`

type GetEquipmentByIDRow struct {
	ID        uuid.UUID
	Name      string
	DailyRate pgtype.Numeric
	IsActive  bool
}

func (q *Queries) GetEquipmentByID(ctx context.Context, db DBTX, id uuid.UUID) (GetEquipmentByIDRow, error) {
	row := db.QueryRow(ctx, getEquipmentByID, id)
	var i GetEquipmentByIDRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.DailyRate,
		&i.IsActive,
	)
	return i, err
}

const getPersonByID = `-- name: GetPersonByID :one
SELECT id, name, is_active FROM persons
WHERE id = $1 AND deleted_at IS NULL
`

type GetPersonByIDRow struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

func (q *Queries) GetPersonByID(ctx context.Context, db DBTX, id uuid.UUID) (GetPersonByIDRow, error) {
	row := db.QueryRow(ctx, getPersonByID, id)
	var i GetPersonByIDRow
	err := row.Scan(&i.ID, &i.Name, &i.IsActive)
	return i, err
}
