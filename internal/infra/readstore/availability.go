package readstore

import (
	"context"
	"time"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	ListReservingPeriods(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservingPeriodsParams) ([]sqlc.ListReservingPeriodsRow, error)
}

// AvailabilityReadStore supplies the periods already held for a piece of
// equipment. The overlap decision itself is made by contract.AvailabilityChecker.
type AvailabilityReadStore struct {
	queries AvailabilityQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) ReservingPeriods(ctx context.Context, equipmentID uuid.UUID, from time.Time, exclude *uuid.UUID) ([]contract.ReservedPeriod, error) {
	params := sqlc.ListReservingPeriodsParams{
		EquipmentID: equipmentID,
		FromDate:    pgconv.DateToPgtype(from),
		ExcludeID:   pgconv.UUIDPtrToPgtype(exclude),
	}

	rows, err := r.queries.ListReservingPeriods(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reserving periods", err)
	}

	periods := make([]contract.ReservedPeriod, 0, len(rows))
	for _, row := range rows {
		period, err := contract.NewPeriod(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
		if err != nil {
			return nil, infra.WrapRepoErr("stored contract has an invalid period", err)
		}
		periods = append(periods, contract.ReservedPeriod{
			ContractID: row.ID,
			Number:     contract.Number(row.ContractNumber),
			Period:     period,
		})
	}
	return periods, nil
}
