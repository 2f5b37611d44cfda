package components

import (
	"rental-contracts/internal/domain/contract"
	"rental-contracts/internal/pkg/clock"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/metrics"
	"rental-contracts/internal/usecase"
	"rental-contracts/internal/usecase/commands"
	"rental-contracts/internal/usecase/queries"
	"rental-contracts/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		contract.NewDefaultPriceCalculator,
		fx.As(new(contract.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			uow shared.UnitOfWork,
			contractQueries queries.ContractQueries,
			pricing contract.PriceCalculator,
			clk clock.Clock,
			m *metrics.ContractMetrics,
			cfg config.Config,
		) (commands.ContractCommands, error) {
			return commands.NewContractUseCase(uow, contractQueries, pricing, clk, m, cfg.Contracts)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewContractQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
