package components

import (
	"qrkeep/internal/pkg/clock"
	"qrkeep/internal/qr"
	"qrkeep/internal/usecase"
	"qrkeep/internal/usecase/commands"
	"qrkeep/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		qr.NewPNGEncoder,
		fx.As(new(usecase.ImageEncoder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQRCodeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQRCodeQueries,
	),
)
