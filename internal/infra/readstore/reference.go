package readstore

import (
	"context"

	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"
	"rental-contracts/internal/usecase/queries"

	"github.com/google/uuid"
)

type PersonReadQueries interface {
	GetPersonByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPersonByIDRow, error)
}

type PersonReadStore struct {
	queries PersonReadQueries
	db      sqlc.DBTX
}

func NewPersonReadStore(queries PersonReadQueries, db sqlc.DBTX) *PersonReadStore {
	return &PersonReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PersonReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PersonView, error) {
	row, err := r.queries.GetPersonByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("person not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find person by ID", err)
	}

	return &queries.PersonView{
		ID:       row.ID,
		Name:     row.Name,
		IsActive: row.IsActive,
	}, nil
}

type EquipmentReadQueries interface {
	GetEquipmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetEquipmentByIDRow, error)
}

type EquipmentReadStore struct {
	queries EquipmentReadQueries
	db      sqlc.DBTX
}

func NewEquipmentReadStore(queries EquipmentReadQueries, db sqlc.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EquipmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EquipmentView, error) {
	row, err := r.queries.GetEquipmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}

	rate, err := pgconv.DecimalFromNumeric(row.DailyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode equipment daily rate", err)
	}

	return &queries.EquipmentView{
		ID:        row.ID,
		Name:      row.Name,
		DailyRate: rate,
		IsActive:  row.IsActive,
	}, nil
}
