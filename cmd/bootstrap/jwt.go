package bootstrap

import (
	"time"

	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/pkg/jwt"

	"go.uber.org/fx"
)

// Tokens are issued by the backend; the duration only applies to locally generated test tokens.
const localTokenDuration = 15 * time.Minute

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET must not be empty")
	}
	return jwt.NewService(cfg.JWT.Secret, localTokenDuration)
}
