package repository

import (
	"context"

	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/infra"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
)

type ContractNumberQueries interface {
	NextContractNumberSeq(ctx context.Context, db sqlc.DBTX, arg sqlc.NextContractNumberSeqParams) (int32, error)
}

type ContractNumberRepository struct {
	queries ContractNumberQueries
	db      sqlc.DBTX
}

func NewContractNumberRepository(queries ContractNumberQueries, db sqlc.DBTX) *ContractNumberRepository {
	return &ContractNumberRepository{
		queries: queries,
		db:      db,
	}
}

// Next bumps the per-year counter. The counter row stays locked until the
// surrounding transaction ends, so concurrent creators queue behind it.
func (r *ContractNumberRepository) Next(ctx context.Context, tx sqlc.DBTX, year int) (int, error) {
	params := sqlc.NextContractNumberSeqParams{
		Year:          int32(year), // #nosec G115 -- calendar year
		NumberPattern: contract.NumberPrefix(year) + "%",
	}

	seq, err := r.queries.NextContractNumberSeq(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to issue contract number", err)
	}
	return int(seq), nil
}
