package components

import (
	"context"
	"log/slog"

	"qrkeep/internal/infra/db"
	"qrkeep/internal/infra/repository"
	"qrkeep/internal/pkg/config"
	"qrkeep/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQRCodeRepository,
	),
)

// NewQRCodeRepository selects the document store by config. The memory driver
// serves local runs and tests without a database; the mongo driver ties its
// client shutdown to the fx lifecycle.
func NewQRCodeRepository(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.QRCodeRepository, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return repository.NewMemoryQRCodeRepository(), nil
	}

	client, cleanup, err := db.Connect(cfg.Store)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return repository.NewMongoQRCodeRepository(client, cfg.Store, logger)
}
