package components

import (
	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/usecase"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/queries"

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
		allocation.NewBestFit,
		fx.As(new(allocation.Strategy)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewDetailLifecycleCommands,
		commands.NewRoomAllocationCommands,
		commands.NewParkingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
