package components

import (
	"qrkeep/internal/handler"
	"qrkeep/internal/handler/api"
	"qrkeep/internal/handler/middleware"
	"qrkeep/internal/identity"
	"qrkeep/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQRCodeHandler,
		NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

// NewSessionMiddleware wires the identity provider into session resolution.
// Without a configured endpoint the middleware passes requests through
// unresolved.
func NewSessionMiddleware(cfg config.Config) (*middleware.SessionMiddleware, error) {
	if cfg.Identity.Endpoint == "" {
		return middleware.NewSessionMiddleware(nil), nil
	}

	provider, err := identity.NewClient(cfg.Identity)
	if err != nil {
		return nil, err
	}
	return middleware.NewSessionMiddleware(provider), nil
}
