package components

import (
	"marketlink/internal/pkg/clock"
	"marketlink/internal/usecase"
	"marketlink/internal/usecase/commands"
	"marketlink/internal/usecase/queries"

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
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProductQueries,
		queries.NewRequestQueries,
		queries.NewOfferQueries,
		queries.NewOrderQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProductCommands,
		commands.NewRequestCommands,
		commands.NewOfferCommands,
		commands.NewPurchaseCommands,
	),
)
