package components

import (
	"shuttlesync/internal/handler"
	"shuttlesync/internal/handler/api"
	"shuttlesync/internal/handler/middleware"
	"shuttlesync/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingDraftHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
