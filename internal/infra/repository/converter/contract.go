package converter

import (
	"rental-contracts/internal/domain/contract"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ContractToCreateParams(c *contract.Contract) sqlc.CreateContractParams {
	return sqlc.CreateContractParams{
		ID:             c.ID(),
		ContractNumber: c.Number().String(),
		CustomerID:     c.CustomerID(),
		CreatedBy:      c.CreatedBy(),
		StartDate:      pgconv.DateToPgtype(c.Period().Start()),
		EndDate:        pgconv.DateToPgtype(c.Period().End()),
		Status:         c.Status().String(),
		TotalValue:     pgconv.DecimalToNumeric(c.TotalValue()),
		TotalDays:      int32(c.TotalDays()), // #nosec G115 -- bounded by the date range
		Notes:          pgconv.StringPtrToPgtype(c.Notes()),
		CreatedAt:      pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func ItemToCreateParams(contractID uuid.UUID, it *contract.Item) sqlc.CreateContractItemParams {
	return sqlc.CreateContractItemParams{
		ID:          it.ID(),
		ContractID:  contractID,
		EquipmentID: it.EquipmentID(),
		Quantity:    int32(it.Quantity()), // #nosec G115 -- validated by the request binding
		DailyRate:   pgconv.DecimalToNumeric(it.DailyRate()),
		Subtotal:    pgconv.DecimalToNumeric(it.Subtotal()),
		Notes:       pgconv.StringPtrToPgtype(it.Notes()),
		CreatedAt:   pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
	}
}

func ContractToUpdateParams(c *contract.Contract) sqlc.UpdateContractParams {
	return sqlc.UpdateContractParams{
		ID:                 c.ID(),
		StartDate:          pgconv.DateToPgtype(c.Period().Start()),
		EndDate:            pgconv.DateToPgtype(c.Period().End()),
		Status:             c.Status().String(),
		TotalValue:         pgconv.DecimalToNumeric(c.TotalValue()),
		TotalDays:          int32(c.TotalDays()), // #nosec G115 -- bounded by the date range
		Notes:              pgconv.StringPtrToPgtype(c.Notes()),
		CancellationReason: pgconv.StringPtrToPgtype(c.CancellationReason()),
		ApprovedBy:         pgconv.UUIDPtrToPgtype(c.ApprovedBy()),
		ApprovedAt:         pgconv.TimePtrToPgtype(c.ApprovedAt()),
		ActivatedAt:        pgconv.TimePtrToPgtype(c.ActivatedAt()),
		FinishedAt:         pgconv.TimePtrToPgtype(c.FinishedAt()),
		CancelledAt:        pgconv.TimePtrToPgtype(c.CancelledAt()),
		DeletedAt:          pgconv.TimePtrToPgtype(c.DeletedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func ItemFromInfra(row sqlc.ContractItems) (*contract.Item, error) {
	rate, err := pgconv.DecimalFromNumeric(row.DailyRate)
	if err != nil {
		return nil, err
	}
	subtotal, err := pgconv.DecimalFromNumeric(row.Subtotal)
	if err != nil {
		return nil, err
	}
	return contract.ReconstructItem(
		row.ID,
		row.EquipmentID,
		int(row.Quantity),
		rate,
		subtotal,
		pgconv.StringPtrFromPgtype(row.Notes),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ContractFromInfra(row sqlc.Contracts, itemRows []sqlc.ContractItems) (*contract.Contract, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalValue)
	if err != nil {
		return nil, err
	}
	period, err := contract.NewPeriod(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, err
	}
	status, err := contract.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*contract.Item, len(itemRows))
	for i, ir := range itemRows {
		item, err := ItemFromInfra(ir)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return contract.Reconstruct(contract.State{
		ID:                 row.ID,
		Number:             contract.Number(row.ContractNumber),
		CustomerID:         row.CustomerID,
		CreatedBy:          row.CreatedBy,
		ApprovedBy:         pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		Period:             period,
		Status:             status,
		TotalValue:         total,
		TotalDays:          int(row.TotalDays),
		Notes:              pgconv.StringPtrFromPgtype(row.Notes),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		Items:              items,
		ApprovedAt:         pgconv.TimePtrFromPgtype(row.ApprovedAt),
		ActivatedAt:        pgconv.TimePtrFromPgtype(row.ActivatedAt),
		FinishedAt:         pgconv.TimePtrFromPgtype(row.FinishedAt),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		DeletedAt:          pgconv.TimePtrFromPgtype(row.DeletedAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
