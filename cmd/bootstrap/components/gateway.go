package components

import (
	"shuttlesync/internal/infra/backend"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) (*backend.Client, error) {
			return backend.NewClient(cfg.Backend)
		},
		fx.Annotate(
			backend.NewCatalogGateway,
			fx.As(new(shared.CatalogGateway)),
		),
		fx.Annotate(
			backend.NewAvailabilityGateway,
			fx.As(new(shared.AvailabilityGateway)),
		),
		fx.Annotate(
			backend.NewBookingGateway,
			fx.As(new(shared.BookingGateway)),
		),
	),
)
