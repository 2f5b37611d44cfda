package components

import (
	"rental-contracts/internal/infra/readstore"
	"rental-contracts/internal/infra/repository"
	sqlc "rental-contracts/internal/infra/sqlc/generated"
	"rental-contracts/internal/infra/uow"
	"rental-contracts/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Contract
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ContractViewQueries)),
		),
		fx.Annotate(
			readstore.NewContractReadStore,
			fx.As(new(queries.ContractReadStore)),
		),
		// Equipment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EquipmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewEquipmentReadStore,
			fx.As(new(queries.EquipmentReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the per-transaction repositories itself.
		uow.NewPostgresUoW,
		// Idempotency keys are swept outside any command transaction.
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.IdempotencyWriteQueries)),
		),
		repository.NewIdempotencyRepository,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
