package bootstrap

import (
	"qrkeep/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
