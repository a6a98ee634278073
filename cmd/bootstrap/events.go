package bootstrap

import (
	"context"
	"log/slog"

	"shuttlesync/internal/infra/events"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set; booking events are not published")
		return events.NopPublisher{}, nil
	}

	pub, err := events.NewPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
