package repository

import (
	"context"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	"rental-contracts/internal/infra/repository/converter"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ContractWriteQueries interface {
	CreateContract(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateContractParams) error
	CreateContractItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateContractItemParams) error
	GetContractForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Contracts, error)
	ListContractItems(ctx context.Context, db sqlc.DBTX, contractID uuid.UUID) ([]sqlc.ContractItems, error)
	UpdateContract(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateContractParams) (int64, error)
	UpdateContractItemSubtotal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateContractItemSubtotalParams) error
	LockEquipment(ctx context.Context, db sqlc.DBTX, equipmentID uuid.UUID) error
}

type ContractRepository struct {
	queries ContractWriteQueries
	db      sqlc.DBTX
}

func NewContractRepository(queries ContractWriteQueries, db sqlc.DBTX) *ContractRepository {
	return &ContractRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ContractRepository) Create(ctx context.Context, tx sqlc.DBTX, c *contract.Contract) error {
	if err := r.queries.CreateContract(ctx, tx, converter.ContractToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create contract", err)
	}

	for _, it := range c.Items() {
		if err := r.queries.CreateContractItem(ctx, tx, converter.ItemToCreateParams(c.ID(), it)); err != nil {
			return infra.WrapRepoErr("failed to create contract item", err)
		}
	}

	return nil
}

func (r *ContractRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*contract.Contract, error) {
	row, err := r.queries.GetContractForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load contract", err)
	}

	items, err := r.queries.ListContractItems(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load contract items", err)
	}

	c, err := converter.ContractFromInfra(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode contract", err)
	}
	return c, nil
}

// Save writes the contract row and the item subtotals. Items themselves are
// immutable after creation.
func (r *ContractRepository) Save(ctx context.Context, tx sqlc.DBTX, c *contract.Contract) error {
	affected, err := r.queries.UpdateContract(ctx, tx, converter.ContractToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update contract", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("contract not found", nil, infra.KindNotFound)
	}

	for _, it := range c.Items() {
		params := sqlc.UpdateContractItemSubtotalParams{
			ID:        it.ID(),
			Subtotal:  pgconv.DecimalToNumeric(it.Subtotal()),
			UpdatedAt: pgconv.TimeToPgtype(it.UpdatedAt()),
		}
		if err := r.queries.UpdateContractItemSubtotal(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to update contract item", err)
		}
	}

	return nil
}

// LockEquipment takes one transaction-scoped advisory lock per id in ascending
// order, so two writers touching overlapping sets cannot deadlock.
func (r *ContractRepository) LockEquipment(ctx context.Context, tx sqlc.DBTX, equipmentIDs []uuid.UUID) error {
	ids := append([]uuid.UUID(nil), equipmentIDs...)
	contract.SortIDs(ids)

	var prev uuid.UUID
	for i, id := range ids {
		if i > 0 && id == prev {
			continue
		}
		prev = id
		if err := r.queries.LockEquipment(ctx, tx, id); err != nil {
			return infra.WrapRepoErr("failed to lock equipment", err)
		}
	}
	return nil
}
